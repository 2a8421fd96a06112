package response

import (
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/usecase"
)

const NoTicketPlaceholder = "---"

type TicketResponse struct {
	ID           string     `json:"id"`
	Number       string     `json:"number"`
	Name         string     `json:"name"`
	ServiceType  string     `json:"serviceType"`
	ServiceLabel string     `json:"serviceLabel"`
	Status       string     `json:"status"`
	Timestamp    time.Time  `json:"timestamp"`
	CalledAt     *time.Time `json:"calledAt,omitempty"`
	Counter      *int       `json:"counter,omitempty"`
}

func FromTicket(t *ticket.Ticket) *TicketResponse {
	if t == nil {
		return nil
	}
	return &TicketResponse{
		ID:           t.ID().String(),
		Number:       t.DisplayNumber(),
		Name:         t.HolderName(),
		ServiceType:  t.Category().String(),
		ServiceLabel: t.Category().Label(),
		Status:       t.Status().String(),
		Timestamp:    t.CreatedAt(),
		CalledAt:     t.CalledAt(),
		Counter:      t.Counter(),
	}
}

func FromTickets(tickets []*ticket.Ticket) []*TicketResponse {
	res := make([]*TicketResponse, len(tickets))
	for i, t := range tickets {
		res[i] = FromTicket(t)
	}
	return res
}

type CallNextResponse struct {
	Completed  *TicketResponse `json:"completed,omitempty"`
	Called     *TicketResponse `json:"called,omitempty"`
	QueueEmpty bool            `json:"queueEmpty"`
}

func FromCallNext(r *usecase.CallNextResult) *CallNextResponse {
	return &CallNextResponse{
		Completed:  FromTicket(r.Completed),
		Called:     FromTicket(r.Called),
		QueueEmpty: r.QueueEmpty,
	}
}

// CurrentResponse carries the placeholder number when nothing is being called.
type CurrentResponse struct {
	Number string          `json:"number"`
	Ticket *TicketResponse `json:"ticket"`
}

func FromCurrent(t *ticket.Ticket) *CurrentResponse {
	if t == nil {
		return &CurrentResponse{Number: NoTicketPlaceholder}
	}
	return &CurrentResponse{Number: t.DisplayNumber(), Ticket: FromTicket(t)}
}

type WaitingQueueResponse struct {
	Count   int               `json:"count"`
	Tickets []*TicketResponse `json:"tickets"`
}

type EstimateResponse struct {
	Waiting int `json:"waiting"`
	Minutes int `json:"minutes"`
}

func FromEstimate(w usecase.WaitEstimate) *EstimateResponse {
	return &EstimateResponse{Waiting: w.Waiting, Minutes: w.Minutes}
}
