package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rshade/digital-footprint/internal/logging"
	"github.com/rshade/digital-footprint/internal/server"
)

func newServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the calculator's JSON HTTP API",
		Example: `  footprint serve --listen :8080`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverCfg := cfg.Server
			if listen != "" {
				serverCfg.ListenAddr = listen
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			srv := server.New(serverCfg, cfg.DefaultLocation, logging.ComponentLogger(logger, "server"))
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&listen, "listen", "", "listen address (overrides config)")

	return cmd
}
