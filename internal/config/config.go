// Package config loads coursechat configuration from file and
// environment via viper. Every field has a code default so the
// binary runs with no config file at all.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the chatbot.
type Config struct {
	General   GeneralConfig   `mapstructure:"general"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Retrieval RetrievalConfig `mapstructure:"retrieval"`
	Providers ProvidersConfig `mapstructure:"providers"`
	Embedding EmbeddingConfig `mapstructure:"embedding"`
	Server    ServerConfig    `mapstructure:"server"`
}

// GeneralConfig contains application-wide settings.
type GeneralConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// CatalogConfig describes where the course catalog comes from.
type CatalogConfig struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"` // jsonl or sqlite
	Watch  bool   `mapstructure:"watch"`  // hot-reload on file change
}

// RetrievalConfig tunes the retrieval strategies.
type RetrievalConfig struct {
	Strategy        string `mapstructure:"strategy"` // default strategy name
	TopK            int    `mapstructure:"top_k"`
	WindowHalfWidth int    `mapstructure:"window_half_width"`
}

// ProvidersConfig selects and configures the answer providers.
type ProvidersConfig struct {
	Default string        `mapstructure:"default"`
	Ollama  OllamaConfig  `mapstructure:"ollama"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// OllamaConfig configures the local Ollama backend.
type OllamaConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// OpenAIConfig configures the OpenAI backend. The API key comes from
// the OPENAI_API_KEY environment variable, checked at call time.
type OpenAIConfig struct {
	Model string `mapstructure:"model"`
}

// GeminiConfig configures the Gemini backend. The API key comes from
// the GEMINI_API_KEY environment variable, checked at call time.
type GeminiConfig struct {
	Model string `mapstructure:"model"`
}

// EmbeddingConfig controls the optional semantic-scoring path.
type EmbeddingConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	BaseURL string `mapstructure:"base_url"`
	Model   string `mapstructure:"model"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// Load reads configuration from the given file path (optional) with
// COURSECHAT_* environment overrides on top of code defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("COURSECHAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("general.log_level", "info")

	v.SetDefault("catalog.path", "courses.jsonl")
	v.SetDefault("catalog.format", "jsonl")
	v.SetDefault("catalog.watch", false)

	v.SetDefault("retrieval.strategy", "top_n")
	v.SetDefault("retrieval.top_k", 3)
	v.SetDefault("retrieval.window_half_width", 1)

	v.SetDefault("providers.default", "ollama")
	v.SetDefault("providers.timeout", 300*time.Second)
	v.SetDefault("providers.ollama.base_url", "http://localhost:11434")
	v.SetDefault("providers.ollama.model", "phi3")
	v.SetDefault("providers.openai.model", "gpt-4o-mini")
	v.SetDefault("providers.gemini.model", "gemini-2.0-flash")

	v.SetDefault("embedding.enabled", false)
	v.SetDefault("embedding.base_url", "http://localhost:11434")
	v.SetDefault("embedding.model", "nomic-embed-text")

	v.SetDefault("server.address", ":8080")
}
