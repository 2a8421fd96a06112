package usecase

import (
	"context"
	"errors"

	"antriqu/internal/domain/staff"
	"antriqu/internal/pkg/errs"
	"antriqu/internal/pkg/jwt"
	"antriqu/internal/pkg/password"

	"github.com/google/uuid"
)

var (
	ErrStaffNotFound        = errs.ErrStaffNotFound
	ErrInvalidCredentials   = errs.ErrInvalidCredentials
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
)

type AuthUseCase interface {
	Login(ctx context.Context, credentials staff.Credentials) (string, *staff.Account, error)
	GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*staff.Account, error)
}

type authUseCaseImpl struct {
	staffRepo  StaffRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(staffRepo StaffRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		staffRepo:  staffRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials staff.Credentials) (string, *staff.Account, error) {
	account, err := a.validateStaff(ctx, credentials)
	if err != nil {
		return "", nil, err
	}

	token, err := a.jwtService.GenerateToken(account.ID(), account.Role())
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	return token, account, nil
}

func (a *authUseCaseImpl) GetCurrentStaff(ctx context.Context, staffID uuid.UUID) (*staff.Account, error) {
	account, err := a.staffRepo.FindByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrStaffNotFound
	}
	return account, nil
}

func (a *authUseCaseImpl) validateStaff(ctx context.Context, credentials staff.Credentials) (*staff.Account, error) {
	account, err := a.staffRepo.FindByEmail(ctx, credentials.Email())
	if err != nil || account == nil {
		// unknown accounts look like a bad password to the caller
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(account.PasswordHash(), credentials.Password().Value()); err != nil {
		if errors.Is(err, password.ErrComparisonFailed) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrAuthenticationFailed
	}

	return account, nil
}
