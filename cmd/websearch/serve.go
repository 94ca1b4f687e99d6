package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP gateway and gRPC health server",
	Long: `Run the search operations as a JSON HTTP gateway under /api/v1, together
with a gRPC server exposing the standard health service.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}
	log := app.Logger
	defer func() { _ = log.Sync() }()

	errCh := make(chan error, 2)
	go func() {
		if err := app.HTTPServer.Start(); err != nil {
			errCh <- err
		}
	}()
	go func() {
		if err := app.GRPCServer.Start(); err != nil {
			errCh <- err
		}
	}()

	log.Info("servers started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case <-quit:
	case runErr = <-errCh:
		log.Error("server failed", zap.Error(runErr))
	}

	log.Info("shutting down servers...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	app.GRPCServer.Stop()
	if err := app.HTTPServer.Stop(ctx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}

	log.Info("servers exited")
	return runErr
}
