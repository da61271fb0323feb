package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/coursechat/coursechat-go/internal/domain/entities"
)

// Ollama implements ports.AnswerProvider against a local Ollama
// server's generate API.
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllama creates the Ollama provider adapter.
func NewOllama(baseURL, model string, timeout time.Duration) *Ollama {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if model == "" {
		model = "phi3"
	}
	if timeout <= 0 {
		timeout = 300 * time.Second
	}
	return &Ollama{
		baseURL: baseURL,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

// Name returns the provider name.
func (p *Ollama) Name() string { return NameOllama }

// ollamaGenerateRequest is the Ollama generate API request.
type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// ollamaGenerateResponse is the Ollama generate API response.
type ollamaGenerateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// GenerateAnswer produces an answer for the question given context.
func (p *Ollama) GenerateAnswer(ctx context.Context, question string, rc entities.RetrievalContext) (string, error) {
	reqBody := ollamaGenerateRequest{
		Model:  p.model,
		Prompt: buildPrompt(question, rc),
		Stream: false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/api/generate", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Ollama at %s: %v: %w", p.baseURL, err, entities.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("Ollama returned status %d: %w", resp.StatusCode, entities.ErrProviderError)
	}

	var genResp ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&genResp); err != nil {
		return "", fmt.Errorf("decoding response: %v: %w", err, entities.ErrProviderError)
	}

	return genResp.Response, nil
}
