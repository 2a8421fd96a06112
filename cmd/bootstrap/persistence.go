package bootstrap

import (
	"fmt"
	"log/slog"

	"antriqu/internal/infra/repository"
	"antriqu/internal/pkg/config"
	"antriqu/internal/usecase"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewTicketRepository,
	),
)

// NewTicketRepository picks the storage backend from STORE_DRIVER. Only the
// selected backend is connected.
func NewTicketRepository(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.TicketRepository, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return repository.NewMemoryTicketRepository(), nil
	case config.StoreDriverFile:
		return repository.NewFileTicketRepository(cfg.Store.FilePath, logger), nil
	case config.StoreDriverRedis:
		client, err := NewRedis(lc, cfg, logger)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisTicketRepository(client, cfg.Redis.Key, logger), nil
	case config.StoreDriverPostgres:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		return repository.NewPgTicketRepository(pool, logger), nil
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}
