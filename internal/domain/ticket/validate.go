package ticket

import (
	"antriqu/internal/pkg/errs"

	"github.com/google/uuid"
)

// ValidateCollection checks a whole collection against the lifecycle rules:
// unique ids and display numbers, call fields present exactly when the ticket
// has been called, and at most one Calling ticket per counter.
func ValidateCollection(tickets []*Ticket) error {
	ids := make(map[uuid.UUID]struct{}, len(tickets))
	numbers := make(map[string]struct{}, len(tickets))
	calling := make(map[int]string)

	for _, t := range tickets {
		if _, exists := ids[t.id]; exists {
			return errs.Mark(errs.Wrapf(ErrDuplicateID, "ticket %s", t.id), ErrCorruptedCollection)
		}
		ids[t.id] = struct{}{}

		if _, exists := numbers[t.displayNumber]; exists {
			return corrupted("display number %s is issued twice", t.displayNumber)
		}
		numbers[t.displayNumber] = struct{}{}

		if err := validateCallFields(t); err != nil {
			return err
		}

		if t.status != StatusCalling {
			continue
		}
		if other, exists := calling[*t.counter]; exists {
			return corrupted("counter %d is calling both %s and %s", *t.counter, other, t.displayNumber)
		}
		calling[*t.counter] = t.displayNumber
	}
	return nil
}

func validateCallFields(t *Ticket) error {
	called := t.calledAt != nil || t.counter != nil
	switch t.status {
	case StatusWaiting:
		if called {
			return corrupted("waiting ticket %s carries call fields", t.displayNumber)
		}
	case StatusCalling, StatusCompleted, StatusSkipped:
		if t.calledAt == nil || t.counter == nil {
			return corrupted("%s ticket %s is missing call fields", t.status, t.displayNumber)
		}
		if *t.counter <= 0 {
			return corrupted("ticket %s has counter %d", t.displayNumber, *t.counter)
		}
	default:
		return errs.Mark(errs.Wrapf(ErrInvalidStatus, "ticket %s", t.displayNumber), ErrCorruptedCollection)
	}
	return nil
}

func corrupted(format string, args ...any) error {
	return errs.Mark(errs.Newf(format, args...), ErrCorruptedCollection)
}
