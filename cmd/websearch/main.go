// Package main is the entry point for the websearch MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lk2023060901/websearch-mcp/internal/conf"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/injector"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/server"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	logOutput  string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "websearch",
	Short: "websearch - web search tools for MCP clients",
	Long: `websearch exposes Bing, Google, Baidu and NewsAPI search plus page fetching
as MCP tools. Without a subcommand it serves MCP over stdin/stdout.`,
	Version:       server.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runStdio,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "override log format (json, console)")
	rootCmd.PersistentFlags().StringVar(&logOutput, "log-output", "", "override log output (console, file, both)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "override log file path")

	rootCmd.AddCommand(stdioCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bootstrap loads configuration and assembles the application
func bootstrap() (*injector.App, error) {
	config, err := conf.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&config.Log,
		logger.WithLevel(logLevel),
		logger.WithFormat(logFormat),
		logger.WithOutput(logOutput),
		logger.WithFilename(logFile),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app, err := injector.InitializeApp(config, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return app, nil
}
