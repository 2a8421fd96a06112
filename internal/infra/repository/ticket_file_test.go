//go:build unit

package repository

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/infra"
	"antriqu/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTickets() []*ticket.Ticket {
	return []*ticket.Ticket{
		builder.NewTicketBuilder().WithNumber("A-001").CallingAt(1, time.Minute).Finished(ticket.StatusCompleted).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("B-001").WithName("Budi").WithCategory(ticket.CategoryFinance).CreatedAfter(time.Second).CallingAt(2, 2*time.Minute).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("A-002").WithName("Citra").CreatedAfter(2 * time.Second).BuildDomain(),
	}
}

var ticketCmp = cmp.AllowUnexported(ticket.Ticket{})

func TestFileTicketRepository(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)

	t.Run("missing file loads as empty", func(t *testing.T) {
		repo := NewFileTicketRepository(filepath.Join(t.TempDir(), "tickets.json"), logger)
		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("empty file loads as empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o600))

		got, err := NewFileTicketRepository(path, logger).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("round trip keeps order and every field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "tickets.json")
		repo := NewFileTicketRepository(path, logger)
		want := sampleTickets()

		require.NoError(t, repo.Save(ctx, want))
		got, err := NewFileTicketRepository(path, logger).Load(ctx)
		require.NoError(t, err)

		if diff := cmp.Diff(want, got, ticketCmp); diff != "" {
			t.Errorf("tickets mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("file uses the shared record field names", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		require.NoError(t, NewFileTicketRepository(path, logger).Save(ctx, sampleTickets()[:1]))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		for _, field := range []string{`"id"`, `"number": "A-001"`, `"name": "Ana"`, `"serviceType": "general"`, `"status": "completed"`, `"timestamp"`, `"calledAt"`, `"counter": 1`} {
			assert.Contains(t, string(data), field)
		}
	})

	t.Run("save replaces the previous snapshot", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		repo := NewFileTicketRepository(path, logger)
		require.NoError(t, repo.Save(ctx, sampleTickets()))
		require.NoError(t, repo.Save(ctx, sampleTickets()[:1]))

		got, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("clear removes the file and tolerates a second call", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tickets.json")
		repo := NewFileTicketRepository(path, logger)
		require.NoError(t, repo.Save(ctx, sampleTickets()))

		require.NoError(t, repo.Clear(ctx))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
		require.NoError(t, repo.Clear(ctx))
	})

	t.Run("corrupted content", func(t *testing.T) {
		tests := []struct {
			name    string
			content string
		}{
			{name: "not json", content: "{tickets"},
			{name: "unknown status", content: `[{"id":"6f1c2b9e-4d0a-4f4e-9a53-2a7e0c8d5b11","number":"A-001","name":"Ana","serviceType":"general","status":"paused","timestamp":"2026-03-02T09:00:00Z"}]`},
			{name: "unknown service", content: `[{"id":"6f1c2b9e-4d0a-4f4e-9a53-2a7e0c8d5b11","number":"X-001","name":"Ana","serviceType":"lounge","status":"waiting","timestamp":"2026-03-02T09:00:00Z"}]`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				path := filepath.Join(t.TempDir(), "tickets.json")
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

				_, err := NewFileTicketRepository(path, logger).Load(ctx)
				assert.True(t, infra.IsKind(err, infra.KindCorrupted), "got %v", err)
			})
		}
	})

	t.Run("unreadable path", func(t *testing.T) {
		dir := t.TempDir()
		_, err := NewFileTicketRepository(dir, logger).Load(ctx)
		assert.True(t, infra.IsKind(err, infra.KindIOFailure), "got %v", err)
	})
}

func TestMemoryTicketRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTicketRepository()

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	want := sampleTickets()
	require.NoError(t, repo.Save(ctx, want))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, ticketCmp); diff != "" {
		t.Errorf("tickets mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
