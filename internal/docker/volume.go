// Package docker manages the credential volume and one-shot containerized
// gcloud invocations, all through the docker CLI.
package docker

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"github.com/blackwell-systems/gcloudctl/internal/command"
	"github.com/blackwell-systems/gcloudctl/internal/names"
)

const (
	// AppName prefixes generated volume names and in-volume file names.
	AppName = "gcloudctl"

	// ConfigMountPath is where the gcloud CLI keeps its configuration and
	// credentials inside the official images. Mounting the credential
	// volume there is what makes successive containers appear already
	// authenticated.
	ConfigMountPath = "/root/.config/gcloud"
)

// Volume is a named docker volume holding gcloud credential state.
type Volume struct {
	name string
	keep bool
}

// Name returns the volume name.
func (v *Volume) Name() string {
	return v.name
}

// Manager owns the credential volume for one run. At most one volume is
// acquired per Manager; the name is fixed once chosen.
type Manager struct {
	runner command.Runner
	vol    *Volume
}

// NewManager returns a Manager issuing docker commands through the runner.
func NewManager(runner command.Runner) *Manager {
	return &Manager{runner: runner}
}

// Acquire creates or reuses the credential volume.
//
// With an explicit name, an existing volume is reused as-is and a missing
// one is created; either way the volume is kept at Release, so callers can
// share credentials across invocations. Without a name a transient volume
// with a random suffix is created and deleted at Release.
func (m *Manager) Acquire(ctx context.Context, explicit string) (*Volume, error) {
	if m.vol != nil {
		return m.vol, nil
	}

	if explicit != "" {
		exists, err := m.volumeExists(ctx, explicit)
		if err != nil {
			return nil, err
		}
		if !exists {
			if err := m.createVolume(ctx, explicit); err != nil {
				return nil, err
			}
		}
		m.vol = &Volume{name: explicit, keep: true}
		return m.vol, nil
	}

	name := fmt.Sprintf("%s-%s", AppName, names.Suffix())
	if err := m.createVolume(ctx, name); err != nil {
		return nil, err
	}
	m.vol = &Volume{name: name, keep: false}
	return m.vol, nil
}

// Release deletes the volume if it is transient and still exists. It is a
// no-op when no volume was acquired, and idempotent against the volume
// having been removed externally.
func (m *Manager) Release(ctx context.Context) error {
	if m.vol == nil || m.vol.keep {
		return nil
	}

	exists, err := m.volumeExists(ctx, m.vol.name)
	if err != nil {
		return err
	}
	if !exists {
		m.vol = nil
		return nil
	}

	status, err := m.runner.Run(ctx, "docker", "volume", "rm", m.vol.name)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("removing volume %s: %s", m.vol.name, status.OutputTrimNL())
	}

	m.vol = nil
	return nil
}

// Pull pulls the given image.
func (m *Manager) Pull(ctx context.Context, image string) error {
	status, err := m.runner.Run(ctx, "docker", "pull", image)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("docker pull %s failed: %s", image, status.OutputTrimNL())
	}
	return nil
}

// CopyIn copies a local file into the credential volume under a
// collision-avoiding name and returns the path the file will have in
// containers that mount the volume at ConfigMountPath.
//
// The file cannot be bind-mounted into the short-lived auth container on
// all platforms, so it is piped through the stdin of a one-shot container
// that mounts the volume at a randomized path and tees the bytes into it.
func (m *Manager) CopyIn(ctx context.Context, image, src string) (string, error) {
	if m.vol == nil {
		return "", fmt.Errorf("no credential volume acquired")
	}

	f, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", src, err)
	}
	defer f.Close()

	target := AppName + "_" + filepath.Base(src)
	mount := "/" + AppName + "-" + names.Suffix()

	status, err := m.runner.RunWithStdin(ctx, f, "docker",
		"run", "--rm", "-i",
		"-v", m.vol.name+":"+mount,
		image,
		"tee", path.Join(mount, target),
	)
	if err != nil {
		return "", err
	}
	if !status.Success() {
		return "", fmt.Errorf("copying %s into volume %s: %s", src, m.vol.name, status.OutputTrimNL())
	}

	return path.Join(ConfigMountPath, target), nil
}

func (m *Manager) volumeExists(ctx context.Context, name string) (bool, error) {
	status, err := m.runner.Run(ctx, "docker", "volume", "inspect", name)
	if err != nil {
		return false, err
	}
	return status.Success(), nil
}

func (m *Manager) createVolume(ctx context.Context, name string) error {
	status, err := m.runner.Run(ctx, "docker", "volume", "create", name)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("creating volume %s: %s", name, status.OutputTrimNL())
	}
	return nil
}
