package usecase

import (
	"context"
	"log/slog"
	"strings"

	"antriqu/internal/domain/ticket"

	"golang.org/x/sync/errgroup"
)

const FallbackGreeting = "Terima kasih telah bersabar menunggu giliran Anda."

var FallbackInsight = Insight{
	Summary:         "Gagal mengambil analisis AI.",
	Recommendation:  "Lanjutkan layanan seperti biasa.",
	ExpectedTraffic: TrafficMedium,
}

type Overview struct {
	Insight  Insight
	Greeting string
	Stats    ticket.Stats
	Wait     WaitEstimate
}

// InsightUseCase wraps the advisory and greeting producers. Producer
// failures never reach the caller; the fixed fallbacks are returned instead.
type InsightUseCase interface {
	Insight(ctx context.Context) Insight
	Greeting(ctx context.Context) string
	Overview(ctx context.Context) Overview
}

type insightUseCaseImpl struct {
	queue   QueueFacade
	advisor AdvisoryProducer
	greeter GreetingProducer
	logger  *slog.Logger
}

func NewInsightUseCase(queue QueueFacade, advisor AdvisoryProducer, greeter GreetingProducer, logger *slog.Logger) InsightUseCase {
	return &insightUseCaseImpl{
		queue:   queue,
		advisor: advisor,
		greeter: greeter,
		logger:  logger,
	}
}

func (uc *insightUseCaseImpl) Insight(ctx context.Context) Insight {
	insight, err := uc.advisor.Advise(ctx, uc.queue.Tickets(ctx))
	if err != nil {
		uc.logger.WarnContext(ctx, "Advisory producer failed, using fallback", slog.String("error", err.Error()))
		return FallbackInsight
	}
	if strings.TrimSpace(insight.Summary) == "" || strings.TrimSpace(insight.Recommendation) == "" || !insight.ExpectedTraffic.IsValid() {
		uc.logger.WarnContext(ctx, "Advisory response incomplete, using fallback")
		return FallbackInsight
	}
	return insight
}

func (uc *insightUseCaseImpl) Greeting(ctx context.Context) string {
	greeting, err := uc.greeter.Greet(ctx)
	if err != nil {
		uc.logger.WarnContext(ctx, "Greeting producer failed, using fallback", slog.String("error", err.Error()))
		return FallbackGreeting
	}
	greeting = strings.TrimSpace(greeting)
	if greeting == "" {
		return FallbackGreeting
	}
	return greeting
}

// Overview fetches insight and greeting concurrently alongside the local figures.
func (uc *insightUseCaseImpl) Overview(ctx context.Context) Overview {
	var overview Overview

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview.Insight = uc.Insight(gctx)
		return nil
	})
	g.Go(func() error {
		overview.Greeting = uc.Greeting(gctx)
		return nil
	})
	overview.Stats = uc.queue.Stats(ctx)
	overview.Wait = uc.queue.EstimatedWait(ctx)
	_ = g.Wait()

	return overview
}
