package repository

import (
	"context"
	"fmt"
	"log/slog"

	"antriqu/internal/domain/staff"
	"antriqu/internal/infra"
	"antriqu/internal/pkg/errs"
	"antriqu/internal/pkg/password"

	"github.com/google/uuid"
)

// StaffRepository is a read-only directory built from configured account
// entries. Accounts are fixed for the lifetime of the process.
type StaffRepository struct {
	byEmail map[string]*staff.Account
	byID    map[uuid.UUID]*staff.Account
	logger  *slog.Logger
}

func NewStaffRepository(entries []string, logger *slog.Logger) (*StaffRepository, error) {
	r := &StaffRepository{
		byEmail: make(map[string]*staff.Account, len(entries)),
		byID:    make(map[uuid.UUID]*staff.Account, len(entries)),
		logger:  logger,
	}

	for i, entry := range entries {
		if entry == "" {
			continue
		}
		account, err := staff.ParseAccount(entry)
		if err != nil {
			return nil, fmt.Errorf("staff account #%d: %w", i+1, err)
		}
		if err := password.ValidateHash(account.PasswordHash()); err != nil {
			return nil, fmt.Errorf("staff account %s: %w", account.Email().Value(), err)
		}
		if _, dup := r.byEmail[account.Email().Value()]; dup {
			return nil, fmt.Errorf("staff account %s configured twice", account.Email().Value())
		}
		r.byEmail[account.Email().Value()] = account
		r.byID[account.ID()] = account
	}

	if len(r.byEmail) == 0 {
		logger.Warn("No staff accounts configured; counter and admin routes will reject every login")
	}
	return r, nil
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email staff.Email) (*staff.Account, error) {
	account, ok := r.byEmail[email.Value()]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "staff not found", errs.ErrStaffNotFound)
	}
	return account, nil
}

func (r *StaffRepository) FindByID(ctx context.Context, id uuid.UUID) (*staff.Account, error) {
	account, ok := r.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(r.logger, infra.KindNotFound, "staff not found", errs.ErrStaffNotFound)
	}
	return account, nil
}
