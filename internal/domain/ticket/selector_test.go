//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numbers(tickets []*ticket.Ticket) []string {
	out := make([]string, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, t.DisplayNumber())
	}
	return out
}

func TestCurrentlyCalling(t *testing.T) {
	t.Run("nothing calling", func(t *testing.T) {
		tickets := []*ticket.Ticket{
			builder.NewTicketBuilder().BuildDomain(),
			builder.NewTicketBuilder().WithNumber("A-002").Finished(ticket.StatusCompleted).BuildDomain(),
		}
		assert.Nil(t, ticket.CurrentlyCalling(tickets))
		assert.Nil(t, ticket.CurrentlyCalling(nil))
	})

	t.Run("latest call wins across counters", func(t *testing.T) {
		tickets := []*ticket.Ticket{
			builder.NewTicketBuilder().WithNumber("A-001").CallingAt(1, time.Minute).BuildDomain(),
			builder.NewTicketBuilder().WithNumber("B-001").CallingAt(2, 3*time.Minute).BuildDomain(),
			builder.NewTicketBuilder().WithNumber("C-001").CallingAt(3, 2*time.Minute).BuildDomain(),
		}
		got := ticket.CurrentlyCalling(tickets)
		require.NotNil(t, got)
		assert.Equal(t, "B-001", got.DisplayNumber())
	})

	t.Run("equal call times go to the earlier inserted ticket", func(t *testing.T) {
		tickets := []*ticket.Ticket{
			builder.NewTicketBuilder().WithNumber("A-001").CallingAt(1, time.Minute).BuildDomain(),
			builder.NewTicketBuilder().WithNumber("A-002").CallingAt(2, time.Minute).BuildDomain(),
		}
		got := ticket.CurrentlyCalling(tickets)
		require.NotNil(t, got)
		assert.Equal(t, "A-001", got.DisplayNumber())
	})

	t.Run("terminal tickets are ignored even when called later", func(t *testing.T) {
		tickets := []*ticket.Ticket{
			builder.NewTicketBuilder().WithNumber("A-001").CallingAt(1, time.Minute).BuildDomain(),
			builder.NewTicketBuilder().WithNumber("A-002").CallingAt(2, time.Hour).Finished(ticket.StatusSkipped).BuildDomain(),
		}
		got := ticket.CurrentlyCalling(tickets)
		require.NotNil(t, got)
		assert.Equal(t, "A-001", got.DisplayNumber())
	})
}

func TestCallingAt(t *testing.T) {
	tickets := []*ticket.Ticket{
		builder.NewTicketBuilder().WithNumber("A-001").CallingAt(1, time.Minute).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("A-002").CallingAt(2, time.Minute).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("A-003").CallingAt(3, time.Minute).Finished(ticket.StatusCompleted).BuildDomain(),
	}

	got := ticket.CallingAt(tickets, 2)
	require.NotNil(t, got)
	assert.Equal(t, "A-002", got.DisplayNumber())
	assert.Nil(t, ticket.CallingAt(tickets, 3))
	assert.Nil(t, ticket.CallingAt(tickets, 4))
}

func TestWaitingQueue(t *testing.T) {
	tickets := []*ticket.Ticket{
		builder.NewTicketBuilder().WithNumber("A-001").CreatedAfter(2 * time.Minute).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("B-001").WithCategory(ticket.CategoryFinance).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("A-002").CallingAt(1, time.Minute).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("C-001").WithCategory(ticket.CategoryCustomerService).CreatedAfter(time.Minute).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("D-001").WithCategory(ticket.CategoryTechnical).CreatedAfter(time.Minute).BuildDomain(),
	}

	t.Run("oldest first across categories", func(t *testing.T) {
		assert.Equal(t, []string{"B-001", "C-001", "D-001", "A-001"}, numbers(ticket.WaitingQueue(tickets)))
	})

	t.Run("OldestWaiting is the head of the queue", func(t *testing.T) {
		got := ticket.OldestWaiting(tickets)
		require.NotNil(t, got)
		assert.Equal(t, "B-001", got.DisplayNumber())
	})

	t.Run("empty when nobody waits", func(t *testing.T) {
		called := []*ticket.Ticket{builder.NewTicketBuilder().CallingAt(1, time.Minute).BuildDomain()}
		assert.Empty(t, ticket.WaitingQueue(called))
		assert.Nil(t, ticket.OldestWaiting(called))
	})

	t.Run("input order is untouched", func(t *testing.T) {
		ticket.WaitingQueue(tickets)
		assert.Equal(t, []string{"A-001", "B-001", "A-002", "C-001", "D-001"}, numbers(tickets))
	})
}
