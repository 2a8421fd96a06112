package gemini

import (
	"context"
	"fmt"
	"strings"

	"antriqu/internal/pkg/config"
	"antriqu/internal/pkg/errs"

	"google.golang.org/genai"
)

func NewClient(ctx context.Context, cfg config.GenAIConfig) (*genai.Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GENAI_API_KEY is required when GENAI_ENABLED is true")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return client, nil
}

// generator is the slice of the genai client the producers depend on.
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

func firstParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return nil
	}
	return content.Parts
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	var sb strings.Builder
	for _, part := range firstParts(resp) {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}
	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", errs.Mark(errs.New("empty text response"), errs.ErrCollaboratorFailed)
	}
	return text, nil
}

func collaboratorErr(err error, what string) error {
	return errs.Mark(errs.Wrap(err, what), errs.ErrCollaboratorFailed)
}
