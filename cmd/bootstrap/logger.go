package bootstrap

import (
	"log/slog"

	"antriqu/internal/pkg/config"
	"antriqu/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

func NewLogger(cfg config.Config) *slog.Logger {
	l := logger.New(cfg.Log, gin.Mode() == gin.ReleaseMode)
	slog.SetDefault(l)
	return l
}
