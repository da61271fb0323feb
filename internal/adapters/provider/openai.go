package provider

import (
	"context"
	"fmt"
	"os"
	"sync"

	openai "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// OpenAI implements ports.AnswerProvider over the OpenAI chat
// completions API. The client is built lazily on first use so that a
// missing OPENAI_API_KEY surfaces as ErrProviderUnavailable at call
// time instead of failing startup.
type OpenAI struct {
	model string

	once   sync.Once
	client openai.Client
	err    error
}

// NewOpenAI creates the OpenAI provider adapter.
func NewOpenAI(model string) *OpenAI {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAI{model: model}
}

// Name returns the provider name.
func (p *OpenAI) Name() string { return NameOpenAI }

func (p *OpenAI) getClient() (openai.Client, error) {
	p.once.Do(func() {
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			p.err = fmt.Errorf("OPENAI_API_KEY not set: %w", entities.ErrProviderUnavailable)
			return
		}
		p.client = openai.NewClient(openaiopt.WithAPIKey(apiKey))
	})
	return p.client, p.err
}

// GenerateAnswer produces an answer for the question given context.
func (p *OpenAI) GenerateAnswer(ctx context.Context, question string, rc entities.RetrievalContext) (string, error) {
	client, err := p.getClient()
	if err != nil {
		return "", err
	}

	completion, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(question, rc)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI: %v: %w", err, entities.ErrProviderError)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices: %w", entities.ErrProviderError)
	}

	return completion.Choices[0].Message.Content, nil
}
