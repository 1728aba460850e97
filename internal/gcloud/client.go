// Package gcloud relays invocations to the gcloud CLI, local or
// containerized, always scoped to a single project.
package gcloud

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackwell-systems/gcloudctl/internal/command"
)

// Executable is the gcloud binary name, both locally and inside images.
const Executable = "gcloud"

// Client issues project-scoped gcloud invocations through a Runner.
type Client struct {
	runner  command.Runner
	project string
}

// NewClient returns a Client. The project must already be resolved; every
// invocation is prefixed with it so calls never depend on ambient
// default-project configuration.
func NewClient(runner command.Runner, project string) *Client {
	return &Client{runner: runner, project: project}
}

// Project returns the configured project id.
func (c *Client) Project() string {
	return c.project
}

// Run invokes gcloud with the configured project prepended.
func (c *Client) Run(ctx context.Context, args ...string) (*command.Status, error) {
	full := append([]string{"--project", c.project}, args...)
	return c.runner.Run(ctx, Executable, full...)
}

// Values runs a gcloud command expected to emit plain values (typically via
// --format=value(...)) and returns the non-empty output lines. A nonzero
// exit is an error.
func (c *Client) Values(ctx context.Context, args ...string) ([]string, error) {
	status, err := c.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if !status.Success() {
		return nil, fmt.Errorf("gcloud %s failed: %s", strings.Join(args, " "), status.OutputTrimNL())
	}

	var values []string
	for _, line := range strings.Split(status.Output(), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			values = append(values, line)
		}
	}
	return values, nil
}

// succeeds runs a gcloud command and reports whether it exited zero,
// treating failure to describe a resource as "does not exist".
func (c *Client) succeeds(ctx context.Context, args ...string) (bool, error) {
	status, err := c.Run(ctx, args...)
	if err != nil {
		return false, err
	}
	return status.Success(), nil
}
