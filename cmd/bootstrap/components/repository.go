package components

import (
	"log/slog"

	"antriqu/internal/infra/repository"
	"antriqu/internal/pkg/config"
	"antriqu/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewStaffRepository,
			fx.As(new(usecase.StaffRepository)),
		),
	),
)

func NewStaffRepository(cfg config.Config, logger *slog.Logger) (*repository.StaffRepository, error) {
	return repository.NewStaffRepository(cfg.Staff.Accounts, logger)
}
