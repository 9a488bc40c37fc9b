package cli

import (
	"github.com/spf13/cobra"

	"github.com/wyc-thg/broker/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the broker client",
		Long: `Connect to the broker server and serve the status endpoints and the
relay until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), configPath(cmd))
		},
	}
}
