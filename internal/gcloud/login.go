package gcloud

import (
	"context"
	"fmt"
)

// Login activates a service account from the key file at keyPath. The path
// is interpreted by the runner: a local filesystem path in local mode, an
// in-volume path (see docker.Manager.CopyIn) in containerized mode.
//
// An empty keyPath is a no-op; the environment or credential volume is
// assumed to be authenticated already.
func (c *Client) Login(ctx context.Context, keyPath string) error {
	if keyPath == "" {
		return nil
	}

	status, err := c.Run(ctx,
		"auth", "activate-service-account",
		"--key-file="+keyPath,
	)
	if err != nil {
		return err
	}
	if !status.Success() {
		return fmt.Errorf("activating service account: %s", status.OutputTrimNL())
	}
	return nil
}
