package cli

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gcloudctl/internal/ops"
)

var tagsMachine string

var tagsCmd = &cobra.Command{
	Use:   "tags --machine MACHINE TAG...",
	Short: "Ensure network tags are present on a VM",
	Long: `Ensure the given network tags are present on an instance.

Tags already present are skipped with a warning; the instance ends up
with the union of its existing tags and the requested ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cleanup, err := setup(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		return ops.EnsureTags(cmd.Context(), rt.gc, rt.pr, tagsMachine, rt.cfg.Zone, args)
	},
}

func init() {
	tagsCmd.Flags().StringVarP(&tagsMachine, "machine", "m", "", "Target instance name")
	tagsCmd.MarkFlagRequired("machine")
}
