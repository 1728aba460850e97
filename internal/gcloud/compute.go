package gcloud

import (
	"context"
	"fmt"
	"strings"
)

// Compute queries go through --format=value(...) so results are exact
// values, one per line, instead of scraped table output.

// InstanceExists reports whether the instance describes successfully.
func (c *Client) InstanceExists(ctx context.Context, name, zone string) (bool, error) {
	return c.succeeds(ctx,
		"compute", "instances", "describe", name,
		"--zone", zone,
		"--format=value(name)",
	)
}

// InstanceTags returns the network tags of an instance.
func (c *Client) InstanceTags(ctx context.Context, name, zone string) ([]string, error) {
	values, err := c.Values(ctx,
		"compute", "instances", "describe", name,
		"--zone", zone,
		"--format=value(tags.items)",
	)
	if err != nil {
		return nil, err
	}
	return splitMultiValue(values), nil
}

// AddInstanceTag adds a single network tag to an instance.
func (c *Client) AddInstanceTag(ctx context.Context, name, zone, tag string) error {
	status, err := c.Run(ctx,
		"compute", "instances", "add-tags", name,
		"--zone", zone,
		"--tags", tag,
	)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("adding tag %q to %s: %s", tag, name, status.OutputTrimNL())
	}
	return nil
}

// ZoneExists reports whether the zone exists in the project.
func (c *Client) ZoneExists(ctx context.Context, zone string) (bool, error) {
	return c.succeeds(ctx,
		"compute", "zones", "describe", zone,
		"--format=value(name)",
	)
}

// DiskTypeExists reports whether the disk type exists in the zone.
func (c *Client) DiskTypeExists(ctx context.Context, diskType, zone string) (bool, error) {
	return c.succeeds(ctx,
		"compute", "disk-types", "describe", diskType,
		"--zone", zone,
		"--format=value(name)",
	)
}

// DiskExists reports whether the disk describes successfully.
func (c *Client) DiskExists(ctx context.Context, name, zone string) (bool, error) {
	return c.succeeds(ctx,
		"compute", "disks", "describe", name,
		"--zone", zone,
		"--format=value(name)",
	)
}

// CreateDisk creates a persistent disk.
func (c *Client) CreateDisk(ctx context.Context, name, zone, size, diskType string) error {
	status, err := c.Run(ctx,
		"compute", "disks", "create", name,
		"--zone", zone,
		"--size", size,
		"--type", diskType,
	)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("creating disk %s: %s", name, status.OutputTrimNL())
	}
	return nil
}

// AttachDisk attaches a disk to an instance under the given device name.
func (c *Client) AttachDisk(ctx context.Context, machine, disk, device, zone string) error {
	status, err := c.Run(ctx,
		"compute", "instances", "attach-disk", machine,
		"--zone", zone,
		"--disk", disk,
		"--device-name", device,
	)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("attaching disk %s to %s: %s", disk, machine, status.OutputTrimNL())
	}
	return nil
}

// InstanceDiskDevices returns the device names of the disks attached to an
// instance.
func (c *Client) InstanceDiskDevices(ctx context.Context, name, zone string) ([]string, error) {
	values, err := c.Values(ctx,
		"compute", "instances", "describe", name,
		"--zone", zone,
		"--format=value(disks.deviceName)",
	)
	if err != nil {
		return nil, err
	}
	return splitMultiValue(values), nil
}

// ListResources lists resource names of an arbitrary gcloud group/command
// pair, e.g. ("compute", "addresses").
func (c *Client) ListResources(ctx context.Context, group, subcommand string) ([]string, error) {
	return c.Values(ctx, group, subcommand, "list", "--format=value(name)")
}

// CreateResource invokes the create action of an arbitrary group/command
// pair, forwarding any extra arguments. The Status is returned so callers
// can propagate the underlying exit code.
func (c *Client) CreateResource(ctx context.Context, group, subcommand, name string, extra []string) (int, string, error) {
	args := append([]string{group, subcommand, "create", name}, extra...)
	status, err := c.Run(ctx, args...)
	if err != nil {
		return 0, "", err
	}
	return status.ExitCode(), status.Output(), nil
}

// splitMultiValue splits gcloud's repeated-field encoding, which joins list
// items with semicolons on a single value line.
func splitMultiValue(lines []string) []string {
	var out []string
	for _, line := range lines {
		for _, item := range strings.Split(line, ";") {
			item = strings.TrimSpace(item)
			if item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}
