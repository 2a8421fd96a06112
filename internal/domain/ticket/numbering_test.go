//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/pkg/errs"
	"antriqu/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextDisplayNumber(t *testing.T) {
	issued := func(category ticket.Category, n int, status ticket.Status) []*ticket.Ticket {
		out := make([]*ticket.Ticket, 0, n)
		for i := 0; i < n; i++ {
			b := builder.NewTicketBuilder().WithCategory(category).CreatedAfter(time.Duration(i) * time.Minute)
			if status != ticket.StatusWaiting {
				b.Finished(status)
			}
			out = append(out, b.BuildDomain())
		}
		return out
	}

	tests := []struct {
		name     string
		category ticket.Category
		tickets  []*ticket.Ticket
		want     string
	}{
		{name: "first general ticket", category: ticket.CategoryGeneral, want: "A-001"},
		{name: "first finance ticket", category: ticket.CategoryFinance, want: "B-001"},
		{name: "first customer service ticket", category: ticket.CategoryCustomerService, want: "C-001"},
		{name: "first technical ticket", category: ticket.CategoryTechnical, want: "D-001"},
		{name: "counts only the same category", category: ticket.CategoryFinance, tickets: issued(ticket.CategoryGeneral, 5, ticket.StatusWaiting), want: "B-001"},
		{name: "counts completed tickets", category: ticket.CategoryGeneral, tickets: issued(ticket.CategoryGeneral, 2, ticket.StatusCompleted), want: "A-003"},
		{name: "counts skipped tickets", category: ticket.CategoryTechnical, tickets: issued(ticket.CategoryTechnical, 9, ticket.StatusSkipped), want: "D-010"},
		{name: "grows past the padding", category: ticket.CategoryGeneral, tickets: issued(ticket.CategoryGeneral, 999, ticket.StatusWaiting), want: "A-1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ticket.NextDisplayNumber(tt.category, tt.tickets)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown category is invalid input", func(t *testing.T) {
		_, err := ticket.NextDisplayNumber("lounge", nil)
		assert.True(t, errs.Is(err, ticket.ErrInvalidCategory))
		assert.True(t, errs.Is(err, ticket.ErrInvalidInput))
	})

	t.Run("numbering restarts after the store is cleared", func(t *testing.T) {
		store := ticket.NewStore()
		for _, tk := range issued(ticket.CategoryGeneral, 3, ticket.StatusWaiting) {
			require.NoError(t, store.Append(tk))
		}
		got, err := ticket.NextDisplayNumber(ticket.CategoryGeneral, store.All())
		require.NoError(t, err)
		assert.Equal(t, "A-004", got)

		store.Clear()
		got, err = ticket.NextDisplayNumber(ticket.CategoryGeneral, store.All())
		require.NoError(t, err)
		assert.Equal(t, "A-001", got)
	})
}

func TestFormatDisplayNumber(t *testing.T) {
	assert.Equal(t, "C-042", ticket.FormatDisplayNumber(ticket.CategoryCustomerService, 42))
	assert.Equal(t, "B-12345", ticket.FormatDisplayNumber(ticket.CategoryFinance, 12345))
}
