package events

import (
	"context"
	"log/slog"

	"antriqu/internal/usecase"
)

// LogPublisher records every ticket event at debug level. It stands in for
// the broker when kafka is disabled.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, event usecase.TicketEvent) error {
	p.logger.DebugContext(ctx, "Ticket event",
		"type", event.Type,
		"ticket_id", event.TicketID,
		"display_number", event.DisplayNumber,
		"status", event.Status)
	return nil
}
