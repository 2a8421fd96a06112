package response

import "antriqu/internal/domain/staff"

type StaffResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func FromStaff(a *staff.Account) *StaffResponse {
	return &StaffResponse{
		ID:    a.ID().String(),
		Email: a.Email().Value(),
		Role:  a.Role().String(),
	}
}

type LoginResponse struct {
	AccessToken string         `json:"accessToken"`
	Staff       *StaffResponse `json:"staff"`
}
