// Package cmd - serve command
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"saas-economics/api"
	"saas-economics/internal/config"
	"saas-economics/internal/logging"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serve the engine over HTTP.

Routes:
  POST /v1/estimate     full report for a JSON input body
  GET  /v1/estimate     full report for query-string inputs
  POST /v1/projection   projection only
  POST /v1/scenarios    growth and pricing scenarios
  POST /v1/advice       health cards, recommendations and risks
  GET  /v1/tiers        provider pricing table
  GET  /health, /version`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default from config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Get().Server
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	server := api.NewServer(newEngine(), api.Options{
		Version:      Version,
		AllowOrigins: cfg.AllowOrigins,
		Logger:       logging.ForComponent("api"),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start(cfg.Address())
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Info("shutting down", zap.String("addr", cfg.Address()))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
