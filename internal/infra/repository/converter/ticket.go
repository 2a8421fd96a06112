package converter

import (
	"time"

	"antriqu/internal/domain/ticket"

	"github.com/google/uuid"
)

// TicketRecord is the JSON form shared by the file and redis repositories.
type TicketRecord struct {
	ID          uuid.UUID  `json:"id"`
	Number      string     `json:"number"`
	Name        string     `json:"name"`
	ServiceType string     `json:"serviceType"`
	Status      string     `json:"status"`
	Timestamp   time.Time  `json:"timestamp"`
	CalledAt    *time.Time `json:"calledAt,omitempty"`
	Counter     *int       `json:"counter,omitempty"`
}

func ToRecord(t *ticket.Ticket) TicketRecord {
	return TicketRecord{
		ID:          t.ID(),
		Number:      t.DisplayNumber(),
		Name:        t.HolderName(),
		ServiceType: t.Category().String(),
		Status:      t.Status().String(),
		Timestamp:   t.CreatedAt(),
		CalledAt:    t.CalledAt(),
		Counter:     t.Counter(),
	}
}

func ToRecords(tickets []*ticket.Ticket) []TicketRecord {
	records := make([]TicketRecord, len(tickets))
	for i, t := range tickets {
		records[i] = ToRecord(t)
	}
	return records
}

func FromRecord(r TicketRecord) (*ticket.Ticket, error) {
	category, err := ticket.NewCategory(r.ServiceType)
	if err != nil {
		return nil, err
	}
	status, err := ticket.NewStatus(r.Status)
	if err != nil {
		return nil, err
	}
	return ticket.ReconstructTicket(r.ID, r.Number, r.Name, category, status, r.Timestamp, r.CalledAt, r.Counter), nil
}

func FromRecords(records []TicketRecord) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(records))
	for _, r := range records {
		t, err := FromRecord(r)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
