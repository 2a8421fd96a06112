package bootstrap

import (
	"context"
	"log/slog"

	"antriqu/internal/infra/display"
	"antriqu/internal/infra/events"
	"antriqu/internal/pkg/config"
	"antriqu/internal/usecase"

	"go.uber.org/fx"
)

// EventsModule feeds the "publishers" group consumed by the queue facade.
var EventsModule = fx.Module("events",
	fx.Provide(
		NewDisplayHub,
		func(hub *display.Hub) usecase.AnnouncementSink { return hub },
		fx.Annotate(
			func(hub *display.Hub) usecase.EventPublisher { return hub },
			fx.ResultTags(`group:"publishers"`),
		),
		fx.Annotate(
			NewBrokerPublisher,
			fx.ResultTags(`group:"publishers"`),
		),
	),
)

func NewDisplayHub(lc fx.Lifecycle, logger *slog.Logger) *display.Hub {
	hub := display.NewHub(logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			hub.Close()
			return nil
		},
	})
	return hub
}

// NewBrokerPublisher returns the kafka publisher when enabled and a
// debug-log publisher otherwise.
func NewBrokerPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (usecase.EventPublisher, error) {
	if !cfg.Kafka.Enabled {
		return events.NewLogPublisher(logger), nil
	}

	producer, err := events.NewSyncProducer(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	logger.Info("Kafka producer connected", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)

	publisher := events.NewKafkaPublisher(producer, cfg.Kafka.Topic, logger)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher, nil
}
