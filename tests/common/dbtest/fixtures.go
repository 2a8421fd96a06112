//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// ResetDB empties every table the service writes to.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, "TRUNCATE tickets")
	return err
}

func CountTickets(t *testing.T, db DBLike) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), "SELECT COUNT(*) FROM tickets").Scan(&count)
	require.NoError(t, err)
	return count
}

// TicketStatus returns the persisted status of the ticket with the given
// display number.
func TicketStatus(t *testing.T, db DBLike, displayNumber string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM tickets WHERE display_number = $1", displayNumber).Scan(&status)
	require.NoError(t, err)
	return status
}

// InsertTicket writes a waiting ticket directly, bypassing the service.
func InsertTicket(t *testing.T, db DBLike, position int, displayNumber, holderName, category string, createdAt time.Time) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO tickets (id, position, display_number, holder_name, category, status, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, 'waiting', $5)`,
		position, displayNumber, holderName, category, createdAt)
	require.NoError(t, err)
}
