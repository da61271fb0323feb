package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	httpserver "github.com/coursechat/coursechat-go/internal/infrastructure/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the JSON HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		controller, holder, err := buildApp(ctx, cfg)
		if err != nil {
			return err
		}

		server := httpserver.NewServer(controller, holder, cfg.Server.Address)
		return server.Start(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
