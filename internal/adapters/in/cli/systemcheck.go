package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/wyc-thg/broker/internal/app"
	"github.com/wyc-thg/broker/internal/domain"
)

// errSystemcheckFailed makes the command exit non-zero without printing
// the outcome twice.
var errSystemcheckFailed = errors.New("systemcheck failed")

type systemcheckFunc func(ctx context.Context, configPath string) (domain.SystemcheckResult, error)

func newSystemcheckCmd() *cobra.Command {
	return newSystemcheckCmdWith(app.Systemcheck)
}

func newSystemcheckCmdWith(check systemcheckFunc) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "systemcheck",
		Short: "Run the validation request once and print the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := check(cmd.Context(), configPath(cmd))
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := printJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			} else {
				printSystemcheck(cmd.OutOrStdout(), result)
			}

			if !result.OK {
				cmd.SilenceErrors = true
				return errSystemcheckFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")

	return cmd
}

func printSystemcheck(w io.Writer, result domain.SystemcheckResult) {
	fmt.Fprintf(w, "URL:     %s\n", displayOrNone(result.DisplayURL))
	fmt.Fprintf(w, "Method:  %s\n", result.Method)
	fmt.Fprintf(w, "Timeout: %dms\n", result.TimeoutMs)
	if result.StatusCode != 0 {
		fmt.Fprintf(w, "Status:  %d\n", result.StatusCode)
	}

	if result.OK {
		fmt.Fprintln(w, color.GreenString("OK"))
		return
	}
	fmt.Fprintf(w, "%s %s\n", color.RedString("NOT OK"), result.Error)
}

func displayOrNone(v string) string {
	if v == "" {
		return "(not configured)"
	}
	return v
}
