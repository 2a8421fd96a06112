package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/infra"
	"antriqu/internal/infra/repository/converter"

	"github.com/natefinch/atomic"
)

// FileTicketRepository keeps the ticket collection as a single JSON array on
// disk. Writes go through a temp file and rename so a crash never leaves a
// half-written snapshot behind.
type FileTicketRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

func NewFileTicketRepository(path string, logger *slog.Logger) *FileTicketRepository {
	return &FileTicketRepository{
		path:   path,
		logger: logger,
	}
}

func (r *FileTicketRepository) Load(ctx context.Context) ([]*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []*ticket.Ticket{}, nil
		}
		return nil, infra.WrapRepoErr(r.logger, infra.KindIOFailure, "failed to read ticket file", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []*ticket.Ticket{}, nil
	}

	var records []converter.TicketRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to decode ticket file", err)
	}

	tickets, err := converter.FromRecords(records)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorrupted, "invalid ticket record in file", err)
	}
	return tickets, nil
}

func (r *FileTicketRepository) Save(ctx context.Context, tickets []*ticket.Ticket) error {
	data, err := json.MarshalIndent(converter.ToRecords(tickets), "", "  ")
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindCorrupted, "failed to encode tickets", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return infra.WrapRepoErr(r.logger, infra.KindIOFailure, "failed to create ticket directory", err)
		}
	}
	if err := atomic.WriteFile(r.path, bytes.NewReader(data)); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindIOFailure, "failed to write ticket file", err)
	}
	return nil
}

func (r *FileTicketRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return infra.WrapRepoErr(r.logger, infra.KindIOFailure, "failed to remove ticket file", err)
	}
	return nil
}
