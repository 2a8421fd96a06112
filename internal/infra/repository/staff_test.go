//go:build unit

package repository

import (
	"context"
	"log/slog"
	"testing"

	"antriqu/internal/domain/staff"
	"antriqu/internal/infra"
	"antriqu/internal/pkg/errs"
	"antriqu/internal/pkg/password"
	"antriqu/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffRepository(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.DiscardHandler)
	operator := builder.NewStaffBuilder()
	admin := builder.NewStaffBuilder().WithEmail("admin@example.com").AsAdmin()

	t.Run("finds configured accounts", func(t *testing.T) {
		repo, err := NewStaffRepository([]string{operator.BuildEntry(), "", admin.BuildEntry()}, logger)
		require.NoError(t, err)

		email, _ := staff.NewEmail("ADMIN@example.com")
		account, err := repo.FindByEmail(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, staff.RoleAdmin, account.Role())
		assert.NoError(t, password.ComparePassword(account.PasswordHash(), builder.DefaultStaffPassword))

		byID, err := repo.FindByID(ctx, account.ID())
		require.NoError(t, err)
		assert.Equal(t, account.Email(), byID.Email())
	})

	t.Run("unknown accounts", func(t *testing.T) {
		repo, err := NewStaffRepository([]string{operator.BuildEntry()}, logger)
		require.NoError(t, err)

		email, _ := staff.NewEmail("ghost@example.com")
		_, err = repo.FindByEmail(ctx, email)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.True(t, errs.Is(err, errs.ErrStaffNotFound))

		_, err = repo.FindByID(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrStaffNotFound))
	})

	t.Run("no accounts is allowed", func(t *testing.T) {
		repo, err := NewStaffRepository(nil, logger)
		require.NoError(t, err)
		assert.NotNil(t, repo)
	})

	t.Run("rejects bad configuration", func(t *testing.T) {
		tests := []struct {
			name    string
			entries []string
		}{
			{name: "malformed entry", entries: []string{"operator@example.com"}},
			{name: "hash bcrypt cannot read", entries: []string{"operator@example.com|plaintext|operator"}},
			{name: "duplicate email", entries: []string{operator.BuildEntry(), operator.BuildEntry()}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewStaffRepository(tt.entries, logger)
				assert.Error(t, err)
			})
		}
	})
}
