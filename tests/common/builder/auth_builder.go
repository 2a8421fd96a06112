//go:build unit || e2e

package builder

import (
	"antriqu/internal/domain/staff"
	reqdto "antriqu/internal/handler/dto/request"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultStaffEmail    = "operator@example.com"
	DefaultStaffPassword = "password123"
)

type StaffBuilder struct {
	Email    string
	Password string
	Role     staff.Role
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		Email:    DefaultStaffEmail,
		Password: DefaultStaffPassword,
		Role:     staff.RoleOperator,
	}
}

func (b *StaffBuilder) With(mutate func(*StaffBuilder)) *StaffBuilder {
	mutate(b)
	return b
}

func (b *StaffBuilder) WithEmail(email string) *StaffBuilder {
	b.Email = email
	return b
}

func (b *StaffBuilder) AsAdmin() *StaffBuilder {
	b.Role = staff.RoleAdmin
	return b
}

func (b *StaffBuilder) BuildDomain() (*staff.Account, error) {
	email, err := staff.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	return staff.NewAccount(email, b.PasswordHash(), b.Role), nil
}

// PasswordHash hashes Password at the minimum bcrypt cost to keep tests fast.
func (b *StaffBuilder) PasswordHash() string {
	hash, err := bcrypt.GenerateFromPassword([]byte(b.Password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// BuildEntry renders the STAFF_ACCOUNTS form of the account.
func (b *StaffBuilder) BuildEntry() string {
	return b.Email + "|" + b.PasswordHash() + "|" + b.Role.String()
}

func (b *StaffBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}
