// Package provider implements the answer-provider adapters: a uniform
// GenerateAnswer capability over heterogeneous LLM backends. Failures
// are classified as entities.ErrProviderUnavailable (cannot reach or
// not configured) or entities.ErrProviderError (backend reached but
// failed), so the controller can surface them without killing the
// session.
package provider

import (
	"strings"

	"github.com/coursechat/coursechat-go/internal/config"
	"github.com/coursechat/coursechat-go/internal/domain/entities"
	"github.com/coursechat/coursechat-go/internal/domain/ports"
)

// Runtime-selectable provider names.
const (
	NameOllama = "ollama"
	NameOpenAI = "openai"
	NameGemini = "gemini"
)

// Names returns the known provider names in presentation order.
func Names() []string {
	return []string{NameOllama, NameOpenAI, NameGemini}
}

// NewSet constructs all provider adapters from configuration. Missing
// API keys are not checked here - a misconfigured backend reports
// ErrProviderUnavailable at call time, not at startup.
func NewSet(cfg config.ProvidersConfig) map[string]ports.AnswerProvider {
	return map[string]ports.AnswerProvider{
		NameOllama: NewOllama(cfg.Ollama.BaseURL, cfg.Ollama.Model, cfg.Timeout),
		NameOpenAI: NewOpenAI(cfg.OpenAI.Model),
		NameGemini: NewGemini(cfg.Gemini.Model),
	}
}

// buildPrompt renders the question and retrieved course context into
// a single generation prompt. Shared by all backends so switching
// providers changes the transport, not the framing.
func buildPrompt(question string, rc entities.RetrievalContext) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant answering questions about university courses. ")
	sb.WriteString("Answer the question based only on the provided course context.\n\n")
	sb.WriteString("Context:\n")
	for _, entry := range rc {
		sb.WriteString("Course ")
		sb.WriteString(entry.Course.ID)
		sb.WriteString(": ")
		sb.WriteString(entry.Course.Title)
		sb.WriteString("\n")
		sb.WriteString(entry.Course.Description)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Question: ")
	sb.WriteString(question)
	sb.WriteString("\n\nAnswer:")
	return sb.String()
}
