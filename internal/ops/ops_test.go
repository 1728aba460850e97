package ops

import (
	"context"
	"io"
	"strings"

	"github.com/blackwell-systems/gcloudctl/internal/command"
	"github.com/blackwell-systems/gcloudctl/internal/gcloud"
	"github.com/blackwell-systems/gcloudctl/internal/msg"
)

// funcRunner routes every invocation through fn and records the calls.
// fn sees the full command line as one string; returning nil means
// "succeed with empty output".
type funcRunner struct {
	fn    func(call string) *command.Status
	calls []string
}

func (f *funcRunner) Run(ctx context.Context, name string, args ...string) (*command.Status, error) {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)
	if f.fn != nil {
		if status := f.fn(call); status != nil {
			return status, nil
		}
	}
	return command.NewStatus(0, ""), nil
}

func (f *funcRunner) RunWithStdin(ctx context.Context, stdin io.Reader, name string, args ...string) (*command.Status, error) {
	return f.Run(ctx, name, args...)
}

func (f *funcRunner) callsMatching(substr string) []string {
	var out []string
	for _, c := range f.calls {
		if strings.Contains(c, substr) {
			out = append(out, c)
		}
	}
	return out
}

func newClient(f *funcRunner) *gcloud.Client {
	return gcloud.NewClient(f, "test-project")
}

func quietPrinter() *msg.Printer {
	return msg.NewWriter(false, io.Discard)
}
