package usecase

import (
	"context"
	"time"

	"antriqu/internal/domain/staff"
	"antriqu/internal/domain/ticket"

	"github.com/google/uuid"
)

// TicketRepository persists the whole ticket collection. Load runs once at
// start, Save is called after every mutation with the full ordered snapshot.
type TicketRepository interface {
	Load(ctx context.Context) ([]*ticket.Ticket, error)
	Save(ctx context.Context, tickets []*ticket.Ticket) error
	Clear(ctx context.Context) error
}

type EventType string

const (
	EventTicketCreated   EventType = "ticket.created"
	EventTicketCalled    EventType = "ticket.called"
	EventTicketCompleted EventType = "ticket.completed"
	EventTicketSkipped   EventType = "ticket.skipped"
	EventTicketRecalled  EventType = "ticket.recalled"
	EventQueueReset      EventType = "queue.reset"
)

type TicketEvent struct {
	EventID       uuid.UUID     `json:"event_id"`
	Type          EventType     `json:"type"`
	TicketID      uuid.UUID     `json:"ticket_id"`
	DisplayNumber string        `json:"display_number,omitempty"`
	Category      string        `json:"category,omitempty"`
	Status        ticket.Status `json:"status,omitempty"`
	Counter       *int          `json:"counter,omitempty"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

// EventPublisher receives ticket state changes. Publishing is best-effort.
type EventPublisher interface {
	Publish(ctx context.Context, event TicketEvent) error
}

// SpeechProducer turns announcement text into audio. It returns
// errs.ErrSpeechUnavailable when no audio can be produced.
type SpeechProducer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type Announcement struct {
	TicketID      uuid.UUID `json:"ticket_id"`
	DisplayNumber string    `json:"display_number"`
	Counter       int       `json:"counter"`
	Text          string    `json:"text"`
	Recall        bool      `json:"recall"`
	// Audio is raw audio from the speech producer. Empty when Fallback is set,
	// in which case the receiving display speaks Text itself in Lang.
	Audio    []byte `json:"audio,omitempty"`
	Fallback bool   `json:"fallback"`
	Lang     string `json:"lang,omitempty"`
}

// AnnouncementSink plays announcements on the customer-facing displays.
type AnnouncementSink interface {
	Deliver(ctx context.Context, announcement Announcement) error
}

type Traffic string

const (
	TrafficLow    Traffic = "Low"
	TrafficMedium Traffic = "Medium"
	TrafficHigh   Traffic = "High"
)

func (t Traffic) IsValid() bool {
	switch t {
	case TrafficLow, TrafficMedium, TrafficHigh:
		return true
	default:
		return false
	}
}

type Insight struct {
	Summary         string  `json:"summary"`
	Recommendation  string  `json:"recommendation"`
	ExpectedTraffic Traffic `json:"expectedTraffic"`
}

type AdvisoryProducer interface {
	Advise(ctx context.Context, tickets []*ticket.Ticket) (Insight, error)
}

type GreetingProducer interface {
	Greet(ctx context.Context) (string, error)
}

type StaffRepository interface {
	FindByEmail(ctx context.Context, email staff.Email) (*staff.Account, error)
	FindByID(ctx context.Context, id uuid.UUID) (*staff.Account, error)
}
