package ops

import (
	"context"

	"github.com/blackwell-systems/gcloudctl/internal/gcloud"
	"github.com/blackwell-systems/gcloudctl/internal/msg"
)

// EnsureResource creates a resource of an arbitrary gcloud group/command
// pair unless one with the same name is already listed. Names are compared
// exactly, not by substring. The returned code is the process exit code:
// 0 when the resource already existed, otherwise the create call's own
// exit code.
func EnsureResource(ctx context.Context, gc *gcloud.Client, p *msg.Printer, group, subcommand, name string, extra []string) (int, string, error) {
	existing, err := gc.ListResources(ctx, group, subcommand)
	if err != nil {
		return 1, "", err
	}

	for _, e := range existing {
		if e == name {
			p.Warnf("%s %s %q already exists, nothing to do", group, subcommand, name)
			return 0, "", nil
		}
	}

	p.Infof("Creating %s %s %q...", group, subcommand, name)
	return gc.CreateResource(ctx, group, subcommand, name, extra)
}
