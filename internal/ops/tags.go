// Package ops implements the idempotent resource flows: ensure-tags,
// ensure-disk, create-if-absent. Each flow is a fixed linear sequence of
// gcloud calls; a resource that already exists is a warning, never an
// error. No call is retried and nothing is rolled back on partial failure.
package ops

import (
	"context"
	"fmt"

	"github.com/blackwell-systems/gcloudctl/internal/gcloud"
	"github.com/blackwell-systems/gcloudctl/internal/msg"
)

// EnsureTags adds the requested network tags to an instance, skipping tags
// already present. The resulting tag set is the union of existing and
// requested tags.
func EnsureTags(ctx context.Context, gc *gcloud.Client, p *msg.Printer, machine, zone string, tags []string) error {
	if machine == "" {
		return fmt.Errorf("a machine name is required")
	}
	if len(tags) == 0 {
		return fmt.Errorf("at least one tag is required")
	}

	exists, err := gc.InstanceExists(ctx, machine, zone)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("instance %q not found in zone %q", machine, zone)
	}

	current, err := gc.InstanceTags(ctx, machine, zone)
	if err != nil {
		return err
	}
	present := make(map[string]bool, len(current))
	for _, t := range current {
		present[t] = true
	}

	for _, tag := range tags {
		if present[tag] {
			p.Warnf("tag %q already present on %s, skipping", tag, machine)
			continue
		}
		p.Infof("Adding tag %q to %s...", tag, machine)
		if err := gc.AddInstanceTag(ctx, machine, zone, tag); err != nil {
			return err
		}
		present[tag] = true
	}

	p.Successf("tags up to date on %s", machine)
	return nil
}
