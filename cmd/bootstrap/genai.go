package bootstrap

import (
	"context"
	"log/slog"

	"antriqu/internal/infra/gemini"
	"antriqu/internal/pkg/config"
	"antriqu/internal/usecase"

	"go.uber.org/fx"
)

type Producers struct {
	fx.Out

	Advisor usecase.AdvisoryProducer
	Greeter usecase.GreetingProducer
	Speech  usecase.SpeechProducer
}

var GenAIModule = fx.Module("genai",
	fx.Provide(
		NewProducers,
	),
)

func NewProducers(cfg config.Config, logger *slog.Logger) (Producers, error) {
	if !cfg.GenAI.Enabled {
		logger.Info("GenAI disabled; insight, greeting and speech use fallbacks")
		return Producers{
			Advisor: gemini.Disabled{},
			Greeter: gemini.Disabled{},
			Speech:  gemini.Disabled{},
		}, nil
	}

	client, err := gemini.NewClient(context.Background(), cfg.GenAI)
	if err != nil {
		return Producers{}, err
	}
	return Producers{
		Advisor: gemini.NewAdvisor(client, cfg.GenAI.TextModel, cfg.GenAI.Timeout),
		Greeter: gemini.NewGreeter(client, cfg.GenAI.TextModel, cfg.GenAI.Timeout),
		Speech:  gemini.NewSpeech(client, cfg.GenAI.SpeechModel, cfg.GenAI.Voice, cfg.GenAI.Timeout),
	}, nil
}
