package ticket

import (
	"strings"
	"time"

	"antriqu/internal/pkg/patch"

	"github.com/google/uuid"
)

type Ticket struct {
	id            uuid.UUID
	displayNumber string
	holderName    string
	category      Category
	status        Status
	createdAt     time.Time
	calledAt      *time.Time
	counter       *int
}

// NewTicket builds a Waiting ticket. The display number is assigned by the
// caller through NextDisplayNumber and never recomputed afterwards.
func NewTicket(id uuid.UUID, displayNumber, holderName string, category Category, now time.Time) (*Ticket, error) {
	name := strings.TrimSpace(holderName)
	if name == "" {
		return nil, ErrEmptyHolderName
	}
	if !category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Ticket{
		id:            id,
		displayNumber: displayNumber,
		holderName:    name,
		category:      category,
		status:        StatusWaiting,
		createdAt:     now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persisted state without validation.
func ReconstructTicket(
	id uuid.UUID,
	displayNumber string,
	holderName string,
	category Category,
	status Status,
	createdAt time.Time,
	calledAt *time.Time,
	counter *int,
) *Ticket {
	return &Ticket{
		id:            id,
		displayNumber: displayNumber,
		holderName:    holderName,
		category:      category,
		status:        status,
		createdAt:     createdAt,
		calledAt:      patch.Clone(calledAt),
		counter:       patch.Clone(counter),
	}
}

func (t *Ticket) ID() uuid.UUID         { return t.id }
func (t *Ticket) DisplayNumber() string { return t.displayNumber }
func (t *Ticket) HolderName() string    { return t.holderName }
func (t *Ticket) Category() Category    { return t.category }
func (t *Ticket) Status() Status        { return t.status }
func (t *Ticket) CreatedAt() time.Time  { return t.createdAt }
func (t *Ticket) CalledAt() *time.Time  { return patch.Clone(t.calledAt) }
func (t *Ticket) Counter() *int         { return patch.Clone(t.counter) }

// IsCallingAt reports whether the ticket is being called at the given counter.
func (t *Ticket) IsCallingAt(counter int) bool {
	return t.status == StatusCalling && patch.Coalesce(t.counter, 0) == counter
}

func (t *Ticket) clone() *Ticket {
	c := *t
	c.calledAt = patch.Clone(t.calledAt)
	c.counter = patch.Clone(t.counter)
	return &c
}
