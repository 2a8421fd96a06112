package request

import (
	"antriqu/internal/domain/ticket"
)

type CreateTicketRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	ServiceType string `json:"serviceType" binding:"required"`
}

func (r *CreateTicketRequest) ToDomain() (string, ticket.Category, error) {
	category, err := ticket.NewCategory(r.ServiceType)
	if err != nil {
		return "", "", err
	}
	return r.Name, category, nil
}

const ResetConfirmation = "RESET"

type ResetRequest struct {
	Confirm string `json:"confirm" binding:"required"`
}

func (r *ResetRequest) Confirmed() bool {
	return r.Confirm == ResetConfirmation
}
