//go:build unit

package staff_test

import (
	"testing"

	"antriqu/internal/domain/staff"
	"antriqu/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccount(t *testing.T) {
	hash := builder.NewStaffBuilder().PasswordHash()

	tests := []struct {
		name     string
		entry    string
		errIs    error
		email    string
		role     staff.Role
		canReset bool
	}{
		{name: "operator OK", entry: "Operator@Example.com|" + hash + "|operator", email: "operator@example.com", role: staff.RoleOperator},
		{name: "admin OK", entry: " admin@example.com | " + hash + " | admin ", email: "admin@example.com", role: staff.RoleAdmin, canReset: true},
		{name: "missing field NG", entry: "admin@example.com|" + hash, errIs: staff.ErrInvalidAccount},
		{name: "empty hash NG", entry: "admin@example.com||admin", errIs: staff.ErrInvalidAccount},
		{name: "bad email NG", entry: "admin|" + hash + "|admin", errIs: staff.ErrInvalidEmail},
		{name: "unknown role NG", entry: "admin@example.com|" + hash + "|root", errIs: staff.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account, err := staff.ParseAccount(tt.entry)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, account)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, account.Email().Value())
			assert.Equal(t, hash, account.PasswordHash())
			assert.Equal(t, tt.role, account.Role())
			assert.Equal(t, tt.canReset, account.CanReset())
		})
	}
}

func TestAccountID(t *testing.T) {
	first, err := builder.NewStaffBuilder().BuildDomain()
	require.NoError(t, err)
	second, err := builder.NewStaffBuilder().AsAdmin().BuildDomain()
	require.NoError(t, err)
	other, err := builder.NewStaffBuilder().WithEmail("other@example.com").BuildDomain()
	require.NoError(t, err)

	assert.Equal(t, first.ID(), second.ID(), "id depends on the email only")
	assert.NotEqual(t, first.ID(), other.ID())
}

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		errIs    error
	}{
		{name: "valid OK", email: "operator@example.com", password: "password123"},
		{name: "empty email NG", email: "", password: "password123", errIs: staff.ErrInvalidEmail},
		{name: "short password NG", email: "operator@example.com", password: "short", errIs: staff.ErrPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds, err := staff.NewCredentials(tt.email, tt.password)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.email, creds.Email().Value())
			assert.Equal(t, tt.password, creds.Password().Value())
		})
	}
}

func TestNewRole(t *testing.T) {
	role, err := staff.NewRole("admin")
	require.NoError(t, err)
	assert.Equal(t, "admin", role.String())

	_, err = staff.NewRole("")
	assert.ErrorIs(t, err, staff.ErrInvalidRole)
}
