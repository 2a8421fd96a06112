package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/pkg/errs"
	"antriqu/internal/usecase"

	"github.com/go-playground/validator/v10"
	"google.golang.org/genai"
)

const insightPromptFormat = `Analisis data antrian berikut:
- Total antrian menunggu: %d
- Total selesai: %d

Berikan ringkasan singkat dalam Bahasa Indonesia tentang situasi saat ini, rekomendasi untuk petugas, dan prediksi kepadatan (Low/Medium/High).`

var insightSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary":         {Type: genai.TypeString},
		"recommendation":  {Type: genai.TypeString},
		"expectedTraffic": {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High"}},
	},
	Required: []string{"summary", "recommendation", "expectedTraffic"},
}

type insightPayload struct {
	Summary         string `json:"summary" validate:"required"`
	Recommendation  string `json:"recommendation" validate:"required"`
	ExpectedTraffic string `json:"expectedTraffic" validate:"required,oneof=Low Medium High"`
}

// Advisor asks the text model for a short operational reading of the queue.
type Advisor struct {
	models   generator
	model    string
	timeout  time.Duration
	validate *validator.Validate
}

func NewAdvisor(client *genai.Client, model string, timeout time.Duration) *Advisor {
	return newAdvisor(client.Models, model, timeout)
}

func newAdvisor(models generator, model string, timeout time.Duration) *Advisor {
	return &Advisor{
		models:   models,
		model:    model,
		timeout:  timeout,
		validate: validator.New(),
	}
}

func InsightPrompt(tickets []*ticket.Ticket) string {
	var waiting, completed int
	for _, t := range tickets {
		switch t.Status() {
		case ticket.StatusWaiting:
			waiting++
		case ticket.StatusCompleted:
			completed++
		}
	}
	return fmt.Sprintf(insightPromptFormat, waiting, completed)
}

func (a *Advisor) Advise(ctx context.Context, tickets []*ticket.Ticket) (usecase.Insight, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.models.GenerateContent(ctx, a.model, genai.Text(InsightPrompt(tickets)), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   insightSchema,
	})
	if err != nil {
		return usecase.Insight{}, collaboratorErr(err, "generate insight")
	}

	text, err := responseText(resp)
	if err != nil {
		return usecase.Insight{}, err
	}
	return a.decode(text)
}

func (a *Advisor) decode(text string) (usecase.Insight, error) {
	var payload insightPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return usecase.Insight{}, errs.Mark(errs.Wrap(err, "decode insight"), errs.ErrSchemaMismatch)
	}
	if err := a.validate.Struct(payload); err != nil {
		return usecase.Insight{}, errs.Mark(errs.Wrap(err, "validate insight"), errs.ErrSchemaMismatch)
	}
	return usecase.Insight{
		Summary:         payload.Summary,
		Recommendation:  payload.Recommendation,
		ExpectedTraffic: usecase.Traffic(payload.ExpectedTraffic),
	}, nil
}
