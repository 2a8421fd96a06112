package staff

import (
	"strings"

	"github.com/google/uuid"
)

// accountNamespace keeps account ids stable across restarts so issued tokens stay valid.
var accountNamespace = uuid.MustParse("6f1c2b9e-4d0a-4f4e-9a53-2a7e0c8d5b11")

// Account is a counter operator or administrator allowed to drive the queue.
type Account struct {
	id           uuid.UUID
	email        Email
	passwordHash string
	role         Role
}

func NewAccount(email Email, passwordHash string, role Role) *Account {
	return &Account{
		id:           uuid.NewSHA1(accountNamespace, []byte(email.Value())),
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

// ParseAccount reads an "email|bcrypt-hash|role" entry.
func ParseAccount(entry string) (*Account, error) {
	parts := strings.Split(strings.TrimSpace(entry), "|")
	if len(parts) != 3 || parts[1] == "" {
		return nil, ErrInvalidAccount
	}
	email, err := NewEmail(parts[0])
	if err != nil {
		return nil, err
	}
	role, err := NewRole(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, err
	}
	return NewAccount(email, strings.TrimSpace(parts[1]), role), nil
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() Role           { return a.role }

// CanReset reports whether the account may wipe the whole queue.
func (a *Account) CanReset() bool {
	return a.role == RoleAdmin
}
