package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
)

func serveCmd(configPath *string) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the site server",
		Long: `Start the HTTP server.

The server renders the first page of every visit on the server, then
keeps the browser's outlet in sync over a WebSocket.

Examples:
  outlet serve
  outlet serve --listen=:9000
  outlet serve --config=site/outlet.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath, listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "Listen address (default from outlet.yaml)")

	return cmd
}

func runServe(ctx context.Context, configPath, listen string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.Listen = listen
	}

	if ctx == nil {
		ctx = context.Background()
	}
	a, err := newApp(ctx, cfg, os.Stderr, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(a.logger)
	otel.SetTracerProvider(a.tracing.TracerProvider())
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Close(shutdownCtx); err != nil {
			a.logger.Warn("cleanup failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("serving site",
		"title", cfg.Title,
		"routes", len(cfg.Routes),
		"config", cfg.Path(),
		"content", cfg.Content.Source)
	if err := a.server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}
