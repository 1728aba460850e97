// Package cli wires the cobra command tree for gcloudctl.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "gcloudctl",
	Short: "Idempotent gcloud automation, locally or through Docker",
	Long: `gcloudctl wraps the gcloud CLI for repeatable infrastructure tasks:
attaching network tags, creating and attaching persistent disks, and
idempotent list-then-create for arbitrary resource types.

With --docker, gcloud runs inside one-shot containers of the configured
image. Credentials are held in a docker volume: transient by default,
or named with --volume to stay authenticated across runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// ExitError carries an underlying command's exit code to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Execute runs the root command and returns the process exit code: 0 on
// success, 1 for usage and precondition errors, or the underlying gcloud
// invocation's own exit code where commands propagate it.
func Execute(ctx context.Context, version string) int {
	rootCmd.Version = version

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		// Underlying command output was already shown.
		return exitErr.Code
	}

	color.Red("✗ %v", err)
	return 1
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringP("key", "k", "", "Path to a service-account key file")
	pf.StringP("project", "p", "", "Cloud project id (default: key file project_id)")
	pf.StringP("zone", "z", "", "Compute zone")
	pf.Bool("docker", false, "Run gcloud inside one-shot containers")
	pf.String("image", "", "gcloud image reference for --docker (default google/cloud-sdk)")
	pf.String("volume", "", "Named credential volume to reuse across runs")
	pf.Bool("silent", false, "Suppress status output (warnings still shown)")
	pf.Bool("trace", false, "Log every external command")

	viper.BindPFlag("key", pf.Lookup("key"))
	viper.BindPFlag("project", pf.Lookup("project"))
	viper.BindPFlag("zone", pf.Lookup("zone"))
	viper.BindPFlag("docker", pf.Lookup("docker"))
	viper.BindPFlag("image", pf.Lookup("image"))
	viper.BindPFlag("volume", pf.Lookup("volume"))
	viper.BindPFlag("silent", pf.Lookup("silent"))
	viper.BindPFlag("trace", pf.Lookup("trace"))

	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(diskCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(imageTagsCmd)
	rootCmd.AddCommand(versionCmd)
}
