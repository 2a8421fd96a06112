package gemini

import (
	"context"
	"time"

	"antriqu/internal/pkg/errs"

	"google.golang.org/genai"
)

const speechStyle = "Ucapkan dengan nada perempuan yang anggun, ramah, dan profesional: "

// Speech synthesizes announcement audio with a prebuilt voice. The model
// returns raw PCM in the first inline data part.
type Speech struct {
	models  generator
	model   string
	voice   string
	timeout time.Duration
}

func NewSpeech(client *genai.Client, model, voice string, timeout time.Duration) *Speech {
	return newSpeech(client.Models, model, voice, timeout)
}

func newSpeech(models generator, model, voice string, timeout time.Duration) *Speech {
	return &Speech{
		models:  models,
		model:   model,
		voice:   voice,
		timeout: timeout,
	}
}

func (s *Speech) Synthesize(ctx context.Context, text string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.models.GenerateContent(ctx, s.model, genai.Text(speechStyle+text), &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: s.voice},
			},
		},
	})
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "synthesize speech"), errs.ErrSpeechUnavailable)
	}

	for _, part := range firstParts(resp) {
		if part != nil && part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return part.InlineData.Data, nil
		}
	}
	return nil, errs.Mark(errs.New("speech response carried no audio"), errs.ErrSpeechUnavailable)
}
