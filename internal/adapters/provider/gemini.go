package provider

import (
	"context"
	"fmt"
	"os"
	"sync"

	"google.golang.org/genai"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// Gemini implements ports.AnswerProvider over the Gemini API. Like
// the OpenAI adapter, the client is built lazily so that a missing
// GEMINI_API_KEY is a call-time ErrProviderUnavailable.
type Gemini struct {
	model string

	once   sync.Once
	client *genai.Client
	err    error
}

// NewGemini creates the Gemini provider adapter.
func NewGemini(model string) *Gemini {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &Gemini{model: model}
}

// Name returns the provider name.
func (p *Gemini) Name() string { return NameGemini }

func (p *Gemini) getClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			p.err = fmt.Errorf("GEMINI_API_KEY not set: %w", entities.ErrProviderUnavailable)
			return
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			p.err = fmt.Errorf("creating Gemini client: %v: %w", err, entities.ErrProviderUnavailable)
			return
		}
		p.client = client
	})
	return p.client, p.err
}

// GenerateAnswer produces an answer for the question given context.
func (p *Gemini) GenerateAnswer(ctx context.Context, question string, rc entities.RetrievalContext) (string, error) {
	client, err := p.getClient(ctx)
	if err != nil {
		return "", err
	}

	resp, err := client.Models.GenerateContent(
		ctx,
		p.model,
		genai.Text(buildPrompt(question, rc)),
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("calling Gemini: %v: %w", err, entities.ErrProviderError)
	}

	answer := resp.Text()
	if answer == "" {
		return "", fmt.Errorf("Gemini returned no content: %w", entities.ErrProviderError)
	}
	return answer, nil
}
