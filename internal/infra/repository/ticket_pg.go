package repository

import (
	"context"
	"log/slog"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/infra"
	"antriqu/internal/infra/db"
	"antriqu/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	selectTicketsSQL = `
SELECT id, display_number, holder_name, category, status, created_at, called_at, counter
FROM tickets
ORDER BY position`

	insertTicketSQL = `
INSERT INTO tickets (id, position, display_number, holder_name, category, status, created_at, called_at, counter)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	deleteTicketsSQL = `DELETE FROM tickets`
)

type ticketRow struct {
	ID            pgtype.UUID
	DisplayNumber string
	HolderName    string
	Category      string
	Status        string
	CreatedAt     pgtype.Timestamptz
	CalledAt      pgtype.Timestamptz
	Counter       pgtype.Int4
}

// PgTicketRepository mirrors the collection into the tickets table. The
// position column keeps insertion order across restarts.
type PgTicketRepository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewPgTicketRepository(pool *pgxpool.Pool, logger *slog.Logger) *PgTicketRepository {
	return &PgTicketRepository{
		pool:   pool,
		logger: logger,
	}
}

func (r *PgTicketRepository) Load(ctx context.Context) ([]*ticket.Ticket, error) {
	rows, err := r.pool.Query(ctx, selectTicketsSQL)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to query tickets", err)
	}
	defer rows.Close()

	tickets := []*ticket.Ticket{}
	for rows.Next() {
		var row ticketRow
		if err := rows.Scan(
			&row.ID,
			&row.DisplayNumber,
			&row.HolderName,
			&row.Category,
			&row.Status,
			&row.CreatedAt,
			&row.CalledAt,
			&row.Counter,
		); err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to scan ticket row", err)
		}

		t, err := toTicket(row)
		if err != nil {
			return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupted, "invalid ticket row", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to iterate ticket rows", err)
	}
	return tickets, nil
}

func (r *PgTicketRepository) Save(ctx context.Context, tickets []*ticket.Ticket) error {
	_, err := db.WithDefaultRetry(ctx, r.pool, func(tx pgx.Tx) (struct{}, error) {
		if _, err := tx.Exec(ctx, deleteTicketsSQL); err != nil {
			return struct{}{}, err
		}
		if len(tickets) == 0 {
			return struct{}{}, nil
		}

		batch := &pgx.Batch{}
		for i, t := range tickets {
			batch.Queue(insertTicketSQL,
				pgconv.UUIDToPgtype(t.ID()),
				i,
				t.DisplayNumber(),
				t.HolderName(),
				t.Category().String(),
				t.Status().String(),
				pgconv.TimeToPgtype(t.CreatedAt()),
				pgconv.TimePtrToPgtype(t.CalledAt()),
				pgconv.IntPtrToPgtype(t.Counter()),
			)
		}
		return struct{}{}, tx.SendBatch(ctx, batch).Close()
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to save tickets", err)
	}
	return nil
}

func (r *PgTicketRepository) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, deleteTicketsSQL); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindDBFailure, "failed to delete tickets", err)
	}
	return nil
}

func toTicket(row ticketRow) (*ticket.Ticket, error) {
	category, err := ticket.NewCategory(row.Category)
	if err != nil {
		return nil, err
	}
	status, err := ticket.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return ticket.ReconstructTicket(
		pgconv.UUIDFromPgtype(row.ID),
		row.DisplayNumber,
		row.HolderName,
		category,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimePtrFromPgtype(row.CalledAt),
		pgconv.IntPtrFromPgtype(row.Counter),
	), nil
}
