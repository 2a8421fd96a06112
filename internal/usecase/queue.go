package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/pkg/clock"
	"antriqu/internal/pkg/config"
	"antriqu/internal/pkg/errs"

	"github.com/google/uuid"
)

type CallNextResult struct {
	// Completed is the ticket the counter was still holding, if any.
	Completed *ticket.Ticket
	// Called is nil when QueueEmpty is set.
	Called     *ticket.Ticket
	QueueEmpty bool
}

type WaitEstimate struct {
	Waiting int
	Minutes int
}

// QueueFacade is the single entry point for reading and mutating the queue.
// Mutations are serialized so numbering stays gap-free and duplicate-free.
type QueueFacade interface {
	Restore(ctx context.Context) error
	CreateTicket(ctx context.Context, holderName string, category ticket.Category) (*ticket.Ticket, error)
	CallNext(ctx context.Context, counter int) (*CallNextResult, error)
	Resolve(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	Skip(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	Recall(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	Reset(ctx context.Context) error

	Get(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error)
	Tickets(ctx context.Context) []*ticket.Ticket
	WaitingQueue(ctx context.Context) []*ticket.Ticket
	CurrentlyCalling(ctx context.Context) *ticket.Ticket
	Stats(ctx context.Context) ticket.Stats
	EstimatedWait(ctx context.Context) WaitEstimate
	Counters() int

	Sync(ctx context.Context) error
	Close(ctx context.Context) error
}

type queueFacadeImpl struct {
	mu        sync.Mutex
	store     *ticket.Store
	writer    *snapshotWriter
	relay     *eventRelay
	announcer Announcer
	clock     clock.Clock
	logger    *slog.Logger
	location  *time.Location
	counters  int
}

func NewQueueFacade(
	store *ticket.Store,
	repo TicketRepository,
	announcer Announcer,
	publishers []EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
	cfg config.Config,
) (QueueFacade, error) {
	loc, err := cfg.Queue.Location()
	if err != nil {
		return nil, err
	}
	return &queueFacadeImpl{
		store:     store,
		writer:    newSnapshotWriter(repo, logger, cfg.Store.SaveTimeout),
		relay:     newEventRelay(publishers, logger, cfg.Store.SaveTimeout),
		announcer: announcer,
		clock:     clk,
		logger:    logger,
		location:  loc,
		counters:  cfg.Queue.Counters,
	}, nil
}

// Restore loads the persisted collection into the store. It runs once at start.
func (q *queueFacadeImpl) Restore(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	tickets, err := q.writer.repo.Load(ctx)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "load tickets"), errs.ErrPersistenceFailed)
	}
	if err := q.store.Replace(tickets); err != nil {
		return errs.Mark(errs.Wrap(err, "restore tickets"), errs.ErrPersistenceFailed)
	}
	q.logger.Info("Ticket collection restored", slog.Int("tickets", len(tickets)))
	return nil
}

func (q *queueFacadeImpl) CreateTicket(ctx context.Context, holderName string, category ticket.Category) (*ticket.Ticket, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	number, err := ticket.NextDisplayNumber(category, q.store.All())
	if err != nil {
		return nil, err
	}
	t, err := ticket.NewTicket(uuid.New(), number, holderName, category, q.now())
	if err != nil {
		return nil, err
	}
	if err := q.store.Append(t); err != nil {
		return nil, err
	}

	q.logger.InfoContext(ctx, "Ticket created",
		slog.String("display_number", t.DisplayNumber()),
		slog.String("category", category.String()),
	)
	q.committed(q.event(EventTicketCreated, t))
	return t, nil
}

func (q *queueFacadeImpl) CallNext(ctx context.Context, counter int) (*CallNextResult, error) {
	if err := q.checkCounter(counter); err != nil {
		return nil, err
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	all := q.store.All()
	result := &CallNextResult{}
	var events []TicketEvent

	if current := ticket.CallingAt(all, counter); current != nil {
		patch, err := ticket.Resolve(current)
		if err != nil {
			return nil, err
		}
		completed, err := q.store.Update(current.ID(), patch)
		if err != nil {
			return nil, err
		}
		result.Completed = completed
		events = append(events, q.event(EventTicketCompleted, completed))
	}

	next := ticket.OldestWaiting(all)
	if next == nil {
		result.QueueEmpty = true
		if len(events) > 0 {
			q.committed(events...)
		}
		q.logger.InfoContext(ctx, "Queue empty", slog.Int("counter", counter))
		return result, nil
	}

	patch, err := ticket.Call(next, counter, q.callTime(all))
	if err != nil {
		return nil, err
	}
	called, err := q.store.Update(next.ID(), patch)
	if err != nil {
		return nil, err
	}
	result.Called = called
	events = append(events, q.event(EventTicketCalled, called))

	q.logger.InfoContext(ctx, "Ticket called",
		slog.String("display_number", called.DisplayNumber()),
		slog.Int("counter", counter),
	)
	q.committed(events...)
	q.announcer.Announce(called, false)
	return result, nil
}

func (q *queueFacadeImpl) Resolve(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	return q.finish(ctx, id, ticket.Resolve, EventTicketCompleted)
}

func (q *queueFacadeImpl) Skip(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	return q.finish(ctx, id, ticket.Skip, EventTicketSkipped)
}

func (q *queueFacadeImpl) finish(
	ctx context.Context,
	id uuid.UUID,
	plan func(*ticket.Ticket) (ticket.Patch, error),
	eventType EventType,
) (*ticket.Ticket, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, err := q.store.Get(id)
	if err != nil {
		return nil, err
	}
	patch, err := plan(t)
	if err != nil {
		return nil, err
	}
	updated, err := q.store.Update(id, patch)
	if err != nil {
		return nil, err
	}

	q.logger.InfoContext(ctx, "Ticket finished",
		slog.String("display_number", updated.DisplayNumber()),
		slog.String("status", updated.Status().String()),
	)
	q.committed(q.event(eventType, updated))
	return updated, nil
}

// Recall re-announces a Calling ticket. Nothing in the store changes.
func (q *queueFacadeImpl) Recall(ctx context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, err := q.store.Get(id)
	if err != nil {
		return nil, err
	}
	if err := ticket.Recall(t); err != nil {
		return nil, err
	}

	q.logger.InfoContext(ctx, "Ticket recalled", slog.String("display_number", t.DisplayNumber()))
	q.relay.Emit(q.event(EventTicketRecalled, t))
	q.announcer.Announce(t, true)
	return t, nil
}

// Reset wipes the persisted copy and then the in-memory collection. When the
// repository fails the queue is left as it was. Calling it on an empty queue
// is harmless.
func (q *queueFacadeImpl) Reset(ctx context.Context) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if err := q.writer.Clear(ctx); err != nil {
		return errs.Mark(errs.Wrap(err, "clear persisted tickets"), errs.ErrPersistenceFailed)
	}
	q.store.Clear()
	q.relay.Emit(TicketEvent{EventID: uuid.New(), Type: EventQueueReset, OccurredAt: q.now()})
	q.logger.WarnContext(ctx, "Queue reset")
	return nil
}

func (q *queueFacadeImpl) Get(_ context.Context, id uuid.UUID) (*ticket.Ticket, error) {
	return q.store.Get(id)
}

func (q *queueFacadeImpl) Tickets(_ context.Context) []*ticket.Ticket {
	return q.store.All()
}

func (q *queueFacadeImpl) WaitingQueue(_ context.Context) []*ticket.Ticket {
	return ticket.WaitingQueue(q.store.All())
}

func (q *queueFacadeImpl) CurrentlyCalling(_ context.Context) *ticket.Ticket {
	return ticket.CurrentlyCalling(q.store.All())
}

func (q *queueFacadeImpl) Stats(_ context.Context) ticket.Stats {
	return ticket.Summarize(q.store.All(), q.location)
}

func (q *queueFacadeImpl) EstimatedWait(_ context.Context) WaitEstimate {
	waiting := len(ticket.WaitingQueue(q.store.All()))
	return WaitEstimate{Waiting: waiting, Minutes: ticket.EstimatedWaitMinutes(waiting)}
}

func (q *queueFacadeImpl) Counters() int {
	return q.counters
}

// Sync waits until every mutation so far has reached the repository.
func (q *queueFacadeImpl) Sync(ctx context.Context) error {
	return q.writer.Flush(ctx)
}

// Close drains announcements, events and pending writes, in that order.
func (q *queueFacadeImpl) Close(ctx context.Context) error {
	if err := q.announcer.Close(ctx); err != nil {
		q.logger.Warn("Announcer did not drain in time", slog.String("error", err.Error()))
	}
	if err := q.relay.Close(ctx); err != nil {
		q.logger.Warn("Event relay did not drain in time", slog.String("error", err.Error()))
	}
	return q.writer.Close(ctx)
}

func (q *queueFacadeImpl) checkCounter(counter int) error {
	if counter <= 0 {
		return ticket.ErrInvalidCounter
	}
	if counter > q.counters {
		return errs.Mark(errs.Wrapf(errs.ErrCounterOutOfRange, "counter %d of %d", counter, q.counters), ticket.ErrInvalidInput)
	}
	return nil
}

// committed persists the current snapshot and forwards events. The caller holds q.mu.
func (q *queueFacadeImpl) committed(events ...TicketEvent) {
	q.writer.Submit(q.store.All())
	q.relay.Emit(events...)
}

// now is truncated to microseconds, the finest precision every repository keeps.
func (q *queueFacadeImpl) now() time.Time {
	return q.clock.Now().Truncate(time.Microsecond)
}

// callTime keeps calledAt strictly increasing so the newest call is always
// the one CurrentlyCalling picks, even when two calls share a microsecond.
func (q *queueFacadeImpl) callTime(all []*ticket.Ticket) time.Time {
	now := q.now()
	if latest := ticket.CurrentlyCalling(all); latest != nil {
		if last := *latest.CalledAt(); !now.After(last) {
			return last.Add(time.Microsecond)
		}
	}
	return now
}

func (q *queueFacadeImpl) event(eventType EventType, t *ticket.Ticket) TicketEvent {
	return TicketEvent{
		EventID:       uuid.New(),
		Type:          eventType,
		TicketID:      t.ID(),
		DisplayNumber: t.DisplayNumber(),
		Category:      t.Category().String(),
		Status:        t.Status(),
		Counter:       t.Counter(),
		OccurredAt:    q.now(),
	}
}
