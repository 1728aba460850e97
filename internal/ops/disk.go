package ops

import (
	"context"
	"fmt"

	"github.com/blackwell-systems/gcloudctl/internal/gcloud"
	"github.com/blackwell-systems/gcloudctl/internal/msg"
	"github.com/blackwell-systems/gcloudctl/internal/names"
)

// DiskOptions parameterizes EnsureDisk. Size and Type are required. Name
// may be empty when Machine is set; a name is then synthesized from the
// machine name. Device defaults to the disk name.
type DiskOptions struct {
	Name    string
	Device  string
	Machine string
	Size    string
	Type    string
	Zone    string
}

// EnsureDisk creates a persistent disk unless it already exists and, when a
// machine is given, attaches it and verifies the attachment. It returns the
// resolved disk name.
func EnsureDisk(ctx context.Context, gc *gcloud.Client, p *msg.Printer, opts DiskOptions) (string, error) {
	if opts.Size == "" {
		return "", fmt.Errorf("a disk size is required")
	}
	if opts.Type == "" {
		return "", fmt.Errorf("a disk type is required")
	}
	if opts.Zone == "" {
		return "", fmt.Errorf("a zone is required")
	}

	name := opts.Name
	if name == "" {
		if opts.Machine == "" {
			return "", fmt.Errorf("a disk name or a machine name is required")
		}
		name = fmt.Sprintf("%s-%s", opts.Machine, names.Suffix())
		p.Infof("No disk name given, using %q", name)
	}

	device := opts.Device
	if device == "" {
		device = name
	}

	// Verify the zone and disk type before creating anything.
	ok, err := gc.ZoneExists(ctx, opts.Zone)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("zone %q not found in project %s", opts.Zone, gc.Project())
	}

	ok, err = gc.DiskTypeExists(ctx, opts.Type, opts.Zone)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("disk type %q not available in zone %s", opts.Type, opts.Zone)
	}

	exists, err := gc.DiskExists(ctx, name, opts.Zone)
	if err != nil {
		return "", err
	}
	if exists {
		p.Warnf("disk %q already exists, skipping creation", name)
	} else {
		p.Infof("Creating disk %q (%s, %s)...", name, opts.Size, opts.Type)
		if err := gc.CreateDisk(ctx, name, opts.Zone, opts.Size, opts.Type); err != nil {
			return "", err
		}
		p.Successf("disk %q created", name)
	}

	if opts.Machine == "" {
		return name, nil
	}

	p.Infof("Attaching disk %q to %s as %q...", name, opts.Machine, device)
	if err := gc.AttachDisk(ctx, opts.Machine, name, device, opts.Zone); err != nil {
		return "", err
	}

	// Re-describe the instance to confirm the device actually appeared.
	devices, err := gc.InstanceDiskDevices(ctx, opts.Machine, opts.Zone)
	if err != nil {
		return "", err
	}
	for _, d := range devices {
		if d == device {
			p.Successf("disk %q attached to %s", name, opts.Machine)
			return name, nil
		}
	}

	return "", fmt.Errorf("device %q not present on %s after attach", device, opts.Machine)
}
