package repository

import (
	"context"
	"sync"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/infra/repository/converter"
)

// MemoryTicketRepository holds the last saved snapshot in process memory.
// Nothing survives a restart.
type MemoryTicketRepository struct {
	mu      sync.Mutex
	records []converter.TicketRecord
}

func NewMemoryTicketRepository() *MemoryTicketRepository {
	return &MemoryTicketRepository{}
}

func (r *MemoryTicketRepository) Load(ctx context.Context) ([]*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return converter.FromRecords(r.records)
}

func (r *MemoryTicketRepository) Save(ctx context.Context, tickets []*ticket.Ticket) error {
	records := converter.ToRecords(tickets)
	r.mu.Lock()
	r.records = records
	r.mu.Unlock()
	return nil
}

func (r *MemoryTicketRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
	return nil
}
