package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/gcloudctl/internal/command"
	"github.com/blackwell-systems/gcloudctl/internal/config"
	"github.com/blackwell-systems/gcloudctl/internal/docker"
	"github.com/blackwell-systems/gcloudctl/internal/gcloud"
	"github.com/blackwell-systems/gcloudctl/internal/msg"
	"github.com/blackwell-systems/gcloudctl/internal/registry"
)

// runtime holds the shared pieces every gcloud-facing command needs.
type runtime struct {
	cfg *config.Config
	pr  *msg.Printer
	gc  *gcloud.Client
}

// setup loads configuration, provisions the credential volume and image in
// docker mode, resolves the project and performs the service-account login.
// The returned cleanup releases the volume; it must run on every exit path,
// so callers defer it immediately.
func setup(cmd *cobra.Command) (rt *runtime, cleanup func(), err error) {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	pr := msg.New(cfg.Silent)
	if cfg.Trace {
		logrus.SetLevel(logrus.DebugLevel)
	}

	base := command.Local{}
	var runner command.Runner = base
	cleanup = func() {}

	var mgr *docker.Manager
	image := cfg.Image

	if cfg.Docker {
		if !command.Available("docker") {
			return nil, nil, fmt.Errorf("docker mode requires the docker CLI in $PATH")
		}

		if !cfg.ImageTagged() {
			tag, err := registry.New().LatestNumbered(ctx, cfg.ImageRepository())
			if err != nil {
				return nil, nil, fmt.Errorf("discovering a tag for %s: %w", cfg.ImageRepository(), err)
			}
			if tag == "" {
				pr.Warnf("no numbered tags found for %s, using latest", cfg.ImageRepository())
				tag = "latest"
			}
			image = cfg.ImageRepository() + ":" + tag
		}
		pr.Infof("Using image %s", image)

		mgr = docker.NewManager(base)
		if err := mgr.Pull(ctx, image); err != nil {
			pr.Warnf("failed to pull %s: %v", image, err)
		}

		vol, err := mgr.Acquire(ctx, cfg.Volume)
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			// Release with a fresh context so an interrupt that
			// cancelled the run does not leak the volume.
			if err := mgr.Release(context.Background()); err != nil {
				pr.Warnf("failed to release credential volume %s: %v", vol.Name(), err)
			}
		}

		runner = docker.NewRunner(base, image, vol)
	} else if !command.Available(gcloud.Executable) {
		return nil, nil, fmt.Errorf("%s is not available in $PATH (or use --docker)", gcloud.Executable)
	}

	// In docker mode a reused named volume may already hold credentials;
	// the active account is then the last-resort project source.
	var fallback command.Runner
	if cfg.Docker && cfg.Volume != "" {
		fallback = runner
	}
	project, err := gcloud.ResolveProject(ctx, cfg.Project, cfg.KeyFile, fallback)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	gc := gcloud.NewClient(runner, project)

	if cfg.KeyFile != "" {
		keyPath := cfg.KeyFile
		if cfg.Docker {
			keyPath, err = mgr.CopyIn(ctx, image, cfg.KeyFile)
			if err != nil {
				cleanup()
				return nil, nil, err
			}
		}
		if err := gc.Login(ctx, keyPath); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	return &runtime{cfg: cfg, pr: pr, gc: gc}, cleanup, nil
}
