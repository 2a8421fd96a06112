//go:build unit || e2e

package builder

import (
	"time"

	"antriqu/internal/domain/ticket"
	reqdto "antriqu/internal/handler/dto/request"
	"antriqu/internal/infra/repository/converter"
	"antriqu/internal/pkg/patch"

	"github.com/google/uuid"
)

var BaseTime = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

type TicketBuilder struct {
	ID            uuid.UUID
	DisplayNumber string
	HolderName    string
	Category      ticket.Category
	Status        ticket.Status
	CreatedAt     time.Time
	CalledAt      *time.Time
	Counter       *int
}

func NewTicketBuilder() *TicketBuilder {
	return &TicketBuilder{
		ID:            uuid.New(),
		DisplayNumber: "A-001",
		HolderName:    "Ana",
		Category:      ticket.CategoryGeneral,
		Status:        ticket.StatusWaiting,
		CreatedAt:     BaseTime,
	}
}

func (b *TicketBuilder) With(mutate func(*TicketBuilder)) *TicketBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *TicketBuilder) BuildDomain() *ticket.Ticket {
	return ticket.ReconstructTicket(b.ID, b.DisplayNumber, b.HolderName, b.Category, b.Status, b.CreatedAt, b.CalledAt, b.Counter)
}

func (b *TicketBuilder) BuildNew() (*ticket.Ticket, error) {
	return ticket.NewTicket(b.ID, b.DisplayNumber, b.HolderName, b.Category, b.CreatedAt)
}

func (b *TicketBuilder) BuildDTO() reqdto.CreateTicketRequest {
	return reqdto.CreateTicketRequest{
		Name:        b.HolderName,
		ServiceType: b.Category.String(),
	}
}

func (b *TicketBuilder) BuildRecord() converter.TicketRecord {
	return converter.ToRecord(b.BuildDomain())
}

// Fluent builder methods
func (b *TicketBuilder) WithNumber(number string) *TicketBuilder {
	b.DisplayNumber = number
	return b
}

func (b *TicketBuilder) WithName(name string) *TicketBuilder {
	b.HolderName = name
	return b
}

func (b *TicketBuilder) WithCategory(category ticket.Category) *TicketBuilder {
	b.Category = category
	return b
}

func (b *TicketBuilder) WithStatus(status ticket.Status) *TicketBuilder {
	b.Status = status
	return b
}

func (b *TicketBuilder) CreatedAfter(d time.Duration) *TicketBuilder {
	b.CreatedAt = BaseTime.Add(d)
	return b
}

// CallingAt puts the ticket in Calling at counter, called d after BaseTime.
func (b *TicketBuilder) CallingAt(counter int, d time.Duration) *TicketBuilder {
	b.Status = ticket.StatusCalling
	b.Counter = patch.Ptr(counter)
	b.CalledAt = patch.Ptr(BaseTime.Add(d))
	return b
}

// Finished moves a called ticket to a terminal status, keeping counter and calledAt.
func (b *TicketBuilder) Finished(status ticket.Status) *TicketBuilder {
	if b.Counter == nil {
		b.CallingAt(1, time.Minute)
	}
	b.Status = status
	return b
}
