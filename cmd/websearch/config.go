package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved search configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = app.Logger.Sync() }()

		out, err := json.MarshalIndent(&types.SearchConfigResponse{
			Success: true,
			Config:  app.Settings.View(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}
