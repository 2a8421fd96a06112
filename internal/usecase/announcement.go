package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"antriqu/internal/domain/ticket"
)

const fallbackSpeechLang = "id-ID"

// Announcer schedules a spoken announcement for a called ticket.
// Announce never blocks on the speech producer and never fails.
type Announcer interface {
	Announce(t *ticket.Ticket, recall bool)
	Close(ctx context.Context) error
}

type announcerImpl struct {
	speech  SpeechProducer
	sink    AnnouncementSink
	logger  *slog.Logger
	timeout time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewAnnouncer(speech SpeechProducer, sink AnnouncementSink, logger *slog.Logger, timeout time.Duration) Announcer {
	return &announcerImpl{
		speech:  speech,
		sink:    sink,
		logger:  logger,
		timeout: timeout,
	}
}

func (a *announcerImpl) Announce(t *ticket.Ticket, recall bool) {
	counter := 0
	if c := t.Counter(); c != nil {
		counter = *c
	}
	announcement := Announcement{
		TicketID:      t.ID(),
		DisplayNumber: t.DisplayNumber(),
		Counter:       counter,
		Text:          ticket.AnnouncementText(t.DisplayNumber(), counter, recall),
		Recall:        recall,
	}

	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		a.logger.Warn("Announcer closed, skipping announcement", slog.String("display_number", t.DisplayNumber()))
		return
	}
	a.wg.Add(1)
	a.mu.Unlock()

	go func() {
		defer a.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				a.logger.Error("Announcement panicked", slog.Any("panic", r), slog.String("display_number", announcement.DisplayNumber))
			}
		}()
		a.deliver(announcement)
	}()
}

func (a *announcerImpl) deliver(announcement Announcement) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	audio, err := a.speech.Synthesize(ctx, announcement.Text)
	if err != nil || len(audio) == 0 {
		attrs := []any{slog.String("display_number", announcement.DisplayNumber)}
		if err != nil {
			attrs = append(attrs, slog.String("error", err.Error()))
		}
		a.logger.Warn("Speech unavailable, falling back to on-device speech", attrs...)
		announcement.Fallback = true
		announcement.Lang = fallbackSpeechLang
	} else {
		announcement.Audio = audio
	}

	if err := a.sink.Deliver(ctx, announcement); err != nil {
		a.logger.Warn("Failed to deliver announcement",
			slog.String("display_number", announcement.DisplayNumber),
			slog.String("error", err.Error()),
		)
	}
}

// Close stops accepting announcements and waits for in-flight ones.
func (a *announcerImpl) Close(ctx context.Context) error {
	a.mu.Lock()
	a.closed = true
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
