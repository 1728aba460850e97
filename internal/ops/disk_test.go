package ops

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/gcloudctl/internal/command"
)

// diskRunner simulates a project where the zone and disk type exist, the
// disk may or may not, and attach-disk faithfully records its device name.
func diskRunner(diskExists bool) *funcRunner {
	var attachedDevice string
	f := &funcRunner{}
	f.fn = func(call string) *command.Status {
		switch {
		case strings.Contains(call, "disks describe"):
			if diskExists {
				return command.NewStatus(0, "existing\n")
			}
			return command.NewStatus(1, "not found")
		case strings.Contains(call, "attach-disk"):
			if m := regexp.MustCompile(`--device-name (\S+)`).FindStringSubmatch(call); m != nil {
				attachedDevice = m[1]
			}
			return command.NewStatus(0, "")
		case strings.Contains(call, "disks.deviceName"):
			return command.NewStatus(0, attachedDevice+"\n")
		}
		return nil
	}
	return f
}

func TestEnsureDiskGeneratesNameAndDevice(t *testing.T) {
	f := diskRunner(false)

	name, err := EnsureDisk(context.Background(), newClient(f), quietPrinter(), DiskOptions{
		Machine: "vm-1",
		Size:    "200GB",
		Type:    "pd-ssd",
		Zone:    "europe-west1-b",
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^vm-1-[a-z0-9]{8}$`), name)

	creates := f.callsMatching("disks create")
	require.Len(t, creates, 1)
	assert.Contains(t, creates[0], name)

	// The device name defaults to the disk name.
	attaches := f.callsMatching("attach-disk")
	require.Len(t, attaches, 1)
	assert.Contains(t, attaches[0], "--device-name "+name)
}

func TestEnsureDiskExistingIsSkipped(t *testing.T) {
	f := diskRunner(true)

	name, err := EnsureDisk(context.Background(), newClient(f), quietPrinter(), DiskOptions{
		Name:    "data-disk",
		Machine: "vm-1",
		Size:    "200GB",
		Type:    "pd-ssd",
		Zone:    "europe-west1-b",
	})
	require.NoError(t, err)
	assert.Equal(t, "data-disk", name)

	assert.Empty(t, f.callsMatching("disks create"), "an existing disk is not an error and not re-created")
	assert.Len(t, f.callsMatching("attach-disk"), 1)
}

func TestEnsureDiskWithoutMachineOnlyCreates(t *testing.T) {
	f := diskRunner(false)

	_, err := EnsureDisk(context.Background(), newClient(f), quietPrinter(), DiskOptions{
		Name: "data-disk",
		Size: "200GB",
		Type: "pd-ssd",
		Zone: "europe-west1-b",
	})
	require.NoError(t, err)
	assert.Len(t, f.callsMatching("disks create"), 1)
	assert.Empty(t, f.callsMatching("attach-disk"))
}

func TestEnsureDiskAttachVerificationFails(t *testing.T) {
	f := diskRunner(false)
	inner := f.fn
	f.fn = func(call string) *command.Status {
		// The instance reports some other device after attach.
		if strings.Contains(call, "disks.deviceName") {
			return command.NewStatus(0, "boot-disk\n")
		}
		return inner(call)
	}

	_, err := EnsureDisk(context.Background(), newClient(f), quietPrinter(), DiskOptions{
		Name:    "data-disk",
		Machine: "vm-1",
		Size:    "200GB",
		Type:    "pd-ssd",
		Zone:    "europe-west1-b",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not present")
}

func TestEnsureDiskValidation(t *testing.T) {
	tests := []struct {
		name string
		opts DiskOptions
	}{
		{"missing size", DiskOptions{Type: "pd-ssd", Zone: "z", Name: "d"}},
		{"missing type", DiskOptions{Size: "200GB", Zone: "z", Name: "d"}},
		{"missing zone", DiskOptions{Size: "200GB", Type: "pd-ssd", Name: "d"}},
		{"missing name and machine", DiskOptions{Size: "200GB", Type: "pd-ssd", Zone: "z"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &funcRunner{}
			_, err := EnsureDisk(context.Background(), newClient(f), quietPrinter(), tt.opts)
			require.Error(t, err)
			assert.Empty(t, f.calls, "validation failures must precede any cloud call")
		})
	}
}

func TestEnsureDiskUnknownZone(t *testing.T) {
	f := &funcRunner{fn: func(call string) *command.Status {
		if strings.Contains(call, "zones describe") {
			return command.NewStatus(1, "not found")
		}
		return nil
	}}

	_, err := EnsureDisk(context.Background(), newClient(f), quietPrinter(), DiskOptions{
		Name: "data-disk",
		Size: "200GB",
		Type: "pd-ssd",
		Zone: "nope-west1-z",
	})
	require.Error(t, err)
	assert.Empty(t, f.callsMatching("disks create"))
}
