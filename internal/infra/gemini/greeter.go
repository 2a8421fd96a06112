package gemini

import (
	"context"
	"time"

	"google.golang.org/genai"
)

const greetingPrompt = "Buatkan satu kalimat sapaan ramah dan motivasi singkat untuk pelanggan yang sedang menunggu antrian di bank/kantor layanan. Maksimal 15 kata."

type Greeter struct {
	models  generator
	model   string
	timeout time.Duration
}

func NewGreeter(client *genai.Client, model string, timeout time.Duration) *Greeter {
	return newGreeter(client.Models, model, timeout)
}

func newGreeter(models generator, model string, timeout time.Duration) *Greeter {
	return &Greeter{
		models:  models,
		model:   model,
		timeout: timeout,
	}
}

func (g *Greeter) Greet(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(greetingPrompt), nil)
	if err != nil {
		return "", collaboratorErr(err, "generate greeting")
	}
	return responseText(resp)
}
