package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gcloudctl/internal/ops"
)

var createCmd = &cobra.Command{
	Use:   "create GROUP COMMAND RESOURCE [-- EXTRA...]",
	Short: "Create a gcloud resource unless it already exists",
	Long: `Idempotent list-then-create for an arbitrary gcloud resource type.

GROUP and COMMAND name the gcloud surface, e.g. "compute addresses".
If a resource with the given name is already listed, nothing happens and
the command exits 0. Otherwise the create action runs with any extra
arguments after "--", and its exit code becomes this command's own.

Example:
  gcloudctl create compute addresses my-ip -- --region=europe-west1`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cleanup, err := setup(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		group, subcommand, name := args[0], args[1], args[2]
		code, output, err := ops.EnsureResource(cmd.Context(), rt.gc, rt.pr, group, subcommand, name, args[3:])
		if err != nil {
			return err
		}
		if output != "" {
			fmt.Fprint(os.Stdout, output)
		}
		if code != 0 {
			return &ExitError{Code: code}
		}
		return nil
	},
}
