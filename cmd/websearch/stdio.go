package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var stdioCmd = &cobra.Command{
	Use:   "stdio",
	Short: "Serve MCP over stdin/stdout",
	Long: `Serve the search tools over the MCP stdio transport.

This command is intended to be launched by MCP clients. It keeps running until
the client closes stdin or the process receives a termination signal.`,
	RunE: runStdio,
}

func runStdio(cmd *cobra.Command, args []string) error {
	app, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = app.Logger.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.MCPServer.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
