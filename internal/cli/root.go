// Package cli implements the coursechat CLI commands.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/coursechat/coursechat-go/internal/config"
	"github.com/coursechat/coursechat-go/internal/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "coursechat",
	Short: "RAG chatbot over a university course catalog",
	Long: "coursechat answers natural-language questions about a course catalog.\n" +
		"Queries are routed through direct id/title matchers before falling back\n" +
		"to a runtime-selectable retrieval strategy, and answers are generated by\n" +
		"a runtime-selectable LLM provider (ollama, openai, gemini).",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Config file path (optional, defaults apply without one)")
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads configuration and applies the log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	log.SetLevel(cfg.General.LogLevel)
	return cfg, nil
}
