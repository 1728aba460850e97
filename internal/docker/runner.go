package docker

import (
	"context"
	"io"

	"github.com/blackwell-systems/gcloudctl/internal/command"
)

// Runner executes commands inside one-shot containers of a fixed image with
// the credential volume mounted at the gcloud config path. Each call pays
// full container start/stop cost; no container is reused.
type Runner struct {
	base  command.Runner
	image string
	vol   *Volume
}

// NewRunner wraps the base runner for containerized execution.
func NewRunner(base command.Runner, image string, vol *Volume) *Runner {
	return &Runner{base: base, image: image, vol: vol}
}

func (r *Runner) Run(ctx context.Context, name string, args ...string) (*command.Status, error) {
	return r.base.Run(ctx, "docker", r.wrap(name, args, false)...)
}

func (r *Runner) RunWithStdin(ctx context.Context, stdin io.Reader, name string, args ...string) (*command.Status, error) {
	return r.base.RunWithStdin(ctx, stdin, "docker", r.wrap(name, args, true)...)
}

func (r *Runner) wrap(name string, args []string, interactive bool) []string {
	wrapped := []string{"run", "--rm"}
	if interactive {
		wrapped = append(wrapped, "-i")
	}
	wrapped = append(wrapped,
		"-v", r.vol.Name()+":"+ConfigMountPath,
		r.image,
		name,
	)
	return append(wrapped, args...)
}
