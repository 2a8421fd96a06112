package ticket

import "fmt"

// NextDisplayNumber derives the next display number for category from the
// tickets issued so far. Every status counts, so numbers are never reused
// until the collection is cleared.
func NextDisplayNumber(category Category, tickets []*Ticket) (string, error) {
	if !category.IsValid() {
		return "", ErrInvalidCategory
	}

	seq := 1
	for _, t := range tickets {
		if t.category == category {
			seq++
		}
	}
	return FormatDisplayNumber(category, seq), nil
}

func FormatDisplayNumber(category Category, seq int) string {
	return fmt.Sprintf("%s-%0*d", category.Prefix(), sequencePad, seq)
}

const sequencePad = 3
