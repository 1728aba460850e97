package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run -- ARGS...",
	Short: "Authenticated passthrough to gcloud",
	Long: `Forward arguments verbatim to gcloud after initialization and login,
always scoped to the resolved project. The underlying exit code becomes
this command's own.

Example:
  gcloudctl run --docker -k key.json -- compute instances list`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cleanup, err := setup(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		status, err := rt.gc.Run(cmd.Context(), args...)
		if err != nil {
			return err
		}
		if status.Output() != "" {
			fmt.Fprint(os.Stdout, status.Output())
		}
		if !status.Success() {
			return &ExitError{Code: status.ExitCode()}
		}
		return nil
	},
}
