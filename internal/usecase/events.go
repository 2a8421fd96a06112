package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const eventBufferSize = 256

// eventRelay forwards ticket events to every publisher off the caller's
// goroutine. Events are dropped with a warning when the buffer is full.
type eventRelay struct {
	publishers []EventPublisher
	logger     *slog.Logger
	timeout    time.Duration

	events    chan TicketEvent
	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
	done      chan struct{}
}

func newEventRelay(publishers []EventPublisher, logger *slog.Logger, timeout time.Duration) *eventRelay {
	r := &eventRelay{
		publishers: publishers,
		logger:     logger,
		timeout:    timeout,
		events:     make(chan TicketEvent, eventBufferSize),
		done:       make(chan struct{}),
	}
	go r.run()
	return r
}

func (r *eventRelay) Emit(events ...TicketEvent) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}
	for _, ev := range events {
		select {
		case r.events <- ev:
		default:
			r.logger.Warn("Event buffer full, dropping event",
				slog.String("type", string(ev.Type)),
				slog.String("display_number", ev.DisplayNumber),
			)
		}
	}
}

func (r *eventRelay) Close(ctx context.Context) error {
	r.closeOnce.Do(func() {
		r.mu.Lock()
		r.closed = true
		close(r.events)
		r.mu.Unlock()
	})
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *eventRelay) run() {
	defer close(r.done)
	for ev := range r.events {
		for _, p := range r.publishers {
			r.publish(p, ev)
		}
	}
}

func (r *eventRelay) publish(p EventPublisher, ev TicketEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := p.Publish(ctx, ev); err != nil {
		r.logger.Warn("Failed to publish ticket event",
			slog.String("type", string(ev.Type)),
			slog.String("event_id", ev.EventID.String()),
			slog.String("error", err.Error()),
		)
	}
}
