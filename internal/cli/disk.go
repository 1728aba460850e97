package cli

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gcloudctl/internal/ops"
)

var diskOpts struct {
	name    string
	device  string
	machine string
	size    string
	typ     string
}

var diskCmd = &cobra.Command{
	Use:   "disk --size SIZE --type TYPE [flags]",
	Short: "Ensure a persistent disk exists and is attached",
	Long: `Ensure a persistent disk exists, creating it if necessary, and attach
it to a machine when one is given.

Without --name, a name is generated from the machine name plus a random
suffix. The device name defaults to the disk name. An already existing
disk is reused, not an error.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, cleanup, err := setup(cmd)
		if err != nil {
			return err
		}
		defer cleanup()

		_, err = ops.EnsureDisk(cmd.Context(), rt.gc, rt.pr, ops.DiskOptions{
			Name:    diskOpts.name,
			Device:  diskOpts.device,
			Machine: diskOpts.machine,
			Size:    diskOpts.size,
			Type:    diskOpts.typ,
			Zone:    rt.cfg.Zone,
		})
		return err
	},
}

func init() {
	f := diskCmd.Flags()
	f.StringVarP(&diskOpts.name, "name", "n", "", "Disk name (default: <machine>-<suffix>)")
	f.StringVarP(&diskOpts.device, "device", "d", "", "Device name (default: disk name)")
	f.StringVarP(&diskOpts.machine, "machine", "m", "", "Instance to attach the disk to")
	f.StringVarP(&diskOpts.size, "size", "s", "", "Disk size, e.g. 200GB")
	f.StringVarP(&diskOpts.typ, "type", "t", "", "Disk type, e.g. pd-ssd")
	diskCmd.MarkFlagRequired("size")
	diskCmd.MarkFlagRequired("type")
}
