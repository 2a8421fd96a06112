package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"antriqu/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

func NewClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   cfg.MaxRetries,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})
}

// Connect opens a client and pings it. The returned cleanup closes the pool.
func Connect(cfg config.RedisConfig, logger *slog.Logger) (*redis.Client, func(), error) {
	cli := NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()
		return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}
	logger.Info("Connected to redis", "addr", cfg.Addr, "db", cfg.DB)

	cleanup := func() {
		if err := cli.Close(); err != nil {
			logger.Warn("Failed to close redis client", "error", err)
			return
		}
		logger.Info("Connection to redis closed")
	}
	return cli, cleanup, nil
}
