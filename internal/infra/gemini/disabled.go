package gemini

import (
	"context"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/pkg/errs"
	"antriqu/internal/usecase"
)

var errDisabled = errs.Mark(errs.New("genai is disabled"), errs.ErrCollaboratorFailed)

// Disabled stands in for every producer when no model is configured. Each
// call fails immediately so callers use their fixed fallbacks.
type Disabled struct{}

func (Disabled) Advise(ctx context.Context, tickets []*ticket.Ticket) (usecase.Insight, error) {
	return usecase.Insight{}, errDisabled
}

func (Disabled) Greet(ctx context.Context) (string, error) {
	return "", errDisabled
}

func (Disabled) Synthesize(ctx context.Context, text string) ([]byte, error) {
	return nil, errs.Mark(errDisabled, errs.ErrSpeechUnavailable)
}
