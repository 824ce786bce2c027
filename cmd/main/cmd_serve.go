package main

import (
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Runs the JSON API on the configured address until SIGINT or SIGTERM.

Endpoints:
  POST /api/generate-poem   {"word": "..."}
  POST /api/generate-chain  {"seed": "..."}
  POST /api/generate        {"seed": "...", "strategy": "..."}
  GET  /api/health
  /api/corpus/...           corpus model management`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := loadApp(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer app.Close()

			if addr == "" {
				addr = app.config.Server.ServerAddr
			}
			ln, err := (&net.ListenConfig{}).Listen(ctx, "tcp", addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", addr, err)
			}

			err = NewServer(app, app.logger).Serve(ctx, ln)
			app.logger.Info("Verseseed has shut down.")
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, overrides server_addr")
	return cmd
}
