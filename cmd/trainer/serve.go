// ABOUTME: CLI command for the JSON HTTP API.
// ABOUTME: Serves workouts, progress, and recommendations until interrupted.
package main

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/trainer/internal/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	Long: `Serve a read-mostly JSON API over HTTP.

ENDPOINTS:

  GET    /healthz
  GET    /api/workouts?limit=&completed=
  GET    /api/workouts/{id}
  DELETE /api/workouts/{id}   (same origin; X-API-Key when api.key is set)
  GET    /api/exercises?category=
  GET    /api/progress?category=
  GET    /api/dashboard
  GET    /api/stats?period=week|month|all
  GET    /api/recommendations?refresh=true
  GET    /api/session`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := serveAddr
		if addr == "" {
			addr = cfg.GetAPIAddr()
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log.Info().Str("addr", addr).Msg("serving api")
		success(cmd.ErrOrStderr(), "Listening on http://%s", addr)
		return api.New(repo, configuredTrainer(), cfg.API.Key).Run(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, 127.0.0.1:8080)")
	rootCmd.AddCommand(serveCmd)
}
