//go:build e2e

package repository_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/infra"
	"antriqu/internal/infra/redis"
	"antriqu/internal/infra/repository"
	"antriqu/internal/usecase"
	"antriqu/tests/common/builder"
	"antriqu/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTickets() []*ticket.Ticket {
	return []*ticket.Ticket{
		builder.NewTicketBuilder().WithNumber("A-001").Finished(ticket.StatusSkipped).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("C-001").WithName("Budi").WithCategory(ticket.CategoryCustomerService).CreatedAfter(time.Second).CallingAt(3, time.Minute).BuildDomain(),
		builder.NewTicketBuilder().WithNumber("A-002").WithName("Citra").CreatedAfter(2 * time.Second).BuildDomain(),
	}
}

// exerciseRepository runs the contract every ticket repository shares.
func exerciseRepository(t *testing.T, repo usecase.TicketRepository) {
	ctx := context.Background()
	opts := cmp.AllowUnexported(ticket.Ticket{})

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	want := sampleTickets()
	require.NoError(t, repo.Save(ctx, want))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got, opts); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, repo.Save(ctx, want[:1]))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))
	got, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPgTicketRepository(t *testing.T) {
	t.Parallel()
	pool := e2e.NewDatabase(t)
	logger := slog.New(slog.DiscardHandler)

	t.Run("contract", func(t *testing.T) {
		exerciseRepository(t, repository.NewPgTicketRepository(pool, logger))
	})

	t.Run("unknown status is corrupted", func(t *testing.T) {
		ctx := context.Background()
		repo := repository.NewPgTicketRepository(pool, logger)
		require.NoError(t, repo.Save(ctx, sampleTickets()[:1]))

		_, err := pool.Exec(ctx, "ALTER TABLE tickets DROP CONSTRAINT tickets_status_check")
		require.NoError(t, err)
		_, err = pool.Exec(ctx, "UPDATE tickets SET status = 'lost'")
		require.NoError(t, err)

		_, err = repo.Load(ctx)
		assert.True(t, infra.IsKind(err, infra.KindCorrupted), "got %v", err)
	})
}

func TestRedisTicketRepository(t *testing.T) {
	t.Parallel()
	cfg := e2e.StartRedis(t)
	logger := slog.New(slog.DiscardHandler)

	client, cleanup, err := redis.Connect(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(cleanup)

	t.Run("contract", func(t *testing.T) {
		exerciseRepository(t, repository.NewRedisTicketRepository(client, cfg.Key, logger))
	})

	t.Run("malformed element is corrupted", func(t *testing.T) {
		ctx := context.Background()
		key := cfg.Key + "_malformed"
		require.NoError(t, client.RPush(ctx, key, "{not json").Err())

		_, err := repository.NewRedisTicketRepository(client, key, logger).Load(ctx)
		assert.True(t, infra.IsKind(err, infra.KindCorrupted), "got %v", err)
	})
}
