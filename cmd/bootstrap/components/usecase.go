package components

import (
	"context"
	"log/slog"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/pkg/clock"
	"antriqu/internal/pkg/config"
	"antriqu/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueueModule,
	usecaseAuthModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ticket.NewStore,
)

var usecaseQueueModule = fx.Module("usecase/queue",
	fx.Provide(
		NewAnnouncer,
		fx.Annotate(
			usecase.NewQueueFacade,
			fx.ParamTags(``, ``, ``, `group:"publishers"`),
		),
		usecase.NewInsightUseCase,
	),
	fx.Invoke(registerQueueLifecycle),
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)

func NewAnnouncer(speech usecase.SpeechProducer, sink usecase.AnnouncementSink, logger *slog.Logger, cfg config.Config) usecase.Announcer {
	return usecase.NewAnnouncer(speech, sink, logger, cfg.Queue.AnnounceTimeout)
}

// registerQueueLifecycle restores persisted tickets before the server starts
// and drains pending work on shutdown.
func registerQueueLifecycle(lc fx.Lifecycle, queue usecase.QueueFacade) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return queue.Restore(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return queue.Close(ctx)
		},
	})
}
