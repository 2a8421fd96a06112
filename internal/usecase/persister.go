package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/pkg/errs"
)

type persistKind int

const (
	persistSave persistKind = iota
	persistClear
	persistBarrier
)

type persistJob struct {
	kind    persistKind
	tickets []*ticket.Ticket
	done    chan error
}

// snapshotWriter runs repository writes on a single goroutine in submission
// order. Consecutive unattended saves collapse into the latest snapshot.
type snapshotWriter struct {
	repo    TicketRepository
	logger  *slog.Logger
	timeout time.Duration

	mu      sync.Mutex
	queue   []*persistJob
	closed  bool
	wake    chan struct{}
	stop    chan struct{}
	stopped chan struct{}
}

func newSnapshotWriter(repo TicketRepository, logger *slog.Logger, timeout time.Duration) *snapshotWriter {
	w := &snapshotWriter{
		repo:    repo,
		logger:  logger,
		timeout: timeout,
		wake:    make(chan struct{}, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go w.run()
	return w
}

// Submit schedules a save and returns immediately.
func (w *snapshotWriter) Submit(tickets []*ticket.Ticket) {
	w.enqueue(&persistJob{kind: persistSave, tickets: tickets})
}

// Clear schedules a clear behind every pending save and waits for it.
func (w *snapshotWriter) Clear(ctx context.Context) error {
	return w.wait(ctx, &persistJob{kind: persistClear, done: make(chan error, 1)})
}

// Flush waits until everything submitted so far has been written.
func (w *snapshotWriter) Flush(ctx context.Context) error {
	return w.wait(ctx, &persistJob{kind: persistBarrier, done: make(chan error, 1)})
}

func (w *snapshotWriter) Close(ctx context.Context) error {
	w.mu.Lock()
	if !w.closed {
		w.closed = true
		close(w.stop)
	}
	w.mu.Unlock()

	select {
	case <-w.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *snapshotWriter) wait(ctx context.Context, job *persistJob) error {
	if !w.enqueue(job) {
		return errs.Wrap(errs.ErrPersistenceFailed, "writer closed")
	}
	select {
	case err := <-job.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *snapshotWriter) enqueue(job *persistJob) bool {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		w.logger.Warn("Snapshot writer closed, dropping persistence job")
		return false
	}
	n := len(w.queue)
	if job.kind == persistSave && n > 0 && w.queue[n-1].kind == persistSave {
		w.queue[n-1] = job
	} else {
		w.queue = append(w.queue, job)
	}
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
	return true
}

func (w *snapshotWriter) run() {
	defer close(w.stopped)
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.stop:
			w.drain()
			return
		}
	}
}

func (w *snapshotWriter) drain() {
	for {
		w.mu.Lock()
		if len(w.queue) == 0 {
			w.mu.Unlock()
			return
		}
		job := w.queue[0]
		w.queue = w.queue[1:]
		w.mu.Unlock()

		err := w.execute(job)
		if job.done != nil {
			job.done <- err
		}
	}
}

func (w *snapshotWriter) execute(job *persistJob) error {
	if job.kind == persistBarrier {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	var err error
	switch job.kind {
	case persistSave:
		err = w.repo.Save(ctx, job.tickets)
	case persistClear:
		err = w.repo.Clear(ctx)
	}
	if err != nil {
		w.logger.Error("Ticket persistence failed",
			slog.Int("tickets", len(job.tickets)),
			slog.Bool("clear", job.kind == persistClear),
			slog.String("error", err.Error()),
		)
		return errs.Mark(err, errs.ErrPersistenceFailed)
	}
	return nil
}
