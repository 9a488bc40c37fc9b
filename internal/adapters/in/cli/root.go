// Package cli implements the CLI adapter for the broker client.
// This package provides Cobra commands that delegate to the app layer.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the broker client CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "broker",
		Short: "Broker client - status endpoints and relay",
		Long: `The broker client keeps a control channel open to the broker server,
relays allowed requests to the configured origin and exposes health,
status and systemcheck endpoints for operators.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: ./broker.yaml)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSystemcheckCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func configPath(cmd *cobra.Command) string {
	path, _ := cmd.Flags().GetString("config")
	return path
}
