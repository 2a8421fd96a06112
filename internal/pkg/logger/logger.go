package logger

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"antriqu/internal/pkg/config"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// For mapping config logger to zap levels
var logLevelMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

func level(cfg config.LogConfig) zapcore.Level {
	lvl, ok := logLevelMap[strings.ToLower(cfg.Level)]
	if !ok {
		return zapcore.InfoLevel
	}
	return lvl
}

// NewCore builds the zap core behind every slog logger in the process.
// Release mode writes JSON, anything else writes the console format.
func NewCore(cfg config.LogConfig, release bool) zapcore.Core {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	var encoderCfg zapcore.EncoderConfig
	if release {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	encoderCfg.TimeKey = "time"
	encoderCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(timezone).Format(cfg.TimeFormat))
	}

	var encoder zapcore.Encoder
	if release {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	return zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(level(cfg)))
}

func New(cfg config.LogConfig, release bool) *slog.Logger {
	handler := zapslog.NewHandler(NewCore(cfg, release),
		zapslog.WithCaller(true),
		zapslog.AddStacktraceAt(slog.LevelError),
	)
	return slog.New(handler)
}

// NewNop discards everything. Used by tests.
func NewNop() *slog.Logger {
	return slog.New(zapslog.NewHandler(zapcore.NewNopCore()))
}
