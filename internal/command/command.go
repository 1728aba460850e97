// Package command provides an injectable runner for external CLI processes.
//
// The rest of the codebase never touches os/exec directly: components hold a
// Runner, and the concrete implementation (local process or containerized,
// see internal/docker) is selected once at configuration time.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Runner executes an external command and reports its outcome.
type Runner interface {
	// Run executes name with args and waits for it to finish. A non-nil
	// error means the command could not be executed at all; a command
	// that ran and exited nonzero is reported through the Status.
	Run(ctx context.Context, name string, args ...string) (*Status, error)

	// RunWithStdin is Run with the process stdin connected to the reader.
	RunWithStdin(ctx context.Context, stdin io.Reader, name string, args ...string) (*Status, error)
}

// Status is the exit status of a finished command.
type Status struct {
	exitCode int
	output   string
}

// NewStatus builds a Status directly; used by runner fakes in tests.
func NewStatus(exitCode int, output string) *Status {
	return &Status{exitCode: exitCode, output: output}
}

// Success returns whether the command exited zero.
func (s *Status) Success() bool {
	return s.exitCode == 0
}

// ExitCode returns the command's exit code.
func (s *Status) ExitCode() int {
	return s.exitCode
}

// Output returns the combined stdout and stderr of the command.
func (s *Status) Output() string {
	return s.output
}

// OutputTrimNL returns the combined output without trailing newlines.
func (s *Status) OutputTrimNL() string {
	return strings.TrimRight(s.output, "\n")
}

// Local runs commands as ordinary child processes.
type Local struct{}

func (Local) Run(ctx context.Context, name string, args ...string) (*Status, error) {
	return run(ctx, nil, name, args...)
}

func (Local) RunWithStdin(ctx context.Context, stdin io.Reader, name string, args ...string) (*Status, error) {
	return run(ctx, stdin, name, args...)
}

func run(ctx context.Context, stdin io.Reader, name string, args ...string) (*Status, error) {
	logrus.Debugf("running command: %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin

	outBuffer := bytes.Buffer{}
	cmd.Stdout = &outBuffer
	cmd.Stderr = &outBuffer

	err := cmd.Run()
	if err == nil {
		return &Status{exitCode: 0, output: outBuffer.String()}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &Status{exitCode: exitErr.ExitCode(), output: outBuffer.String()}, nil
	}

	return nil, fmt.Errorf("executing %s: %w", name, err)
}

// Available reports whether the named executable can be found in $PATH.
func Available(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
