package gcloud

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/gcloudctl/internal/command"
)

// fakeRunner replays canned statuses for matching invocations and records
// every call. The first matching rule wins; unmatched calls succeed with
// empty output.
type rule struct {
	match  string
	status *command.Status
}

type fakeRunner struct {
	rules []rule
	calls []string
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (*command.Status, error) {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)
	for _, r := range f.rules {
		if strings.Contains(call, r.match) {
			return r.status, nil
		}
	}
	return command.NewStatus(0, ""), nil
}

func (f *fakeRunner) RunWithStdin(ctx context.Context, stdin io.Reader, name string, args ...string) (*command.Status, error) {
	return f.Run(ctx, name, args...)
}

func TestRunPrependsProject(t *testing.T) {
	f := &fakeRunner{}
	c := NewClient(f, "my-project")

	_, err := c.Run(context.Background(), "compute", "zones", "list")
	require.NoError(t, err)

	require.Len(t, f.calls, 1)
	assert.True(t, strings.HasPrefix(f.calls[0], "gcloud --project my-project compute"),
		"every invocation must be project-scoped, got %q", f.calls[0])
}

func TestValues(t *testing.T) {
	f := &fakeRunner{rules: []rule{
		{match: "zones list", status: command.NewStatus(0, "europe-west1-b\n\neurope-west1-c\n")},
	}}
	c := NewClient(f, "my-project")

	values, err := c.Values(context.Background(), "compute", "zones", "list", "--format=value(name)")
	require.NoError(t, err)
	assert.Equal(t, []string{"europe-west1-b", "europe-west1-c"}, values)
}

func TestValuesFailure(t *testing.T) {
	f := &fakeRunner{rules: []rule{
		{match: "zones list", status: command.NewStatus(1, "permission denied")},
	}}
	c := NewClient(f, "my-project")

	_, err := c.Values(context.Background(), "compute", "zones", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestInstanceTagsSplitsMultiValue(t *testing.T) {
	f := &fakeRunner{rules: []rule{
		{match: "instances describe", status: command.NewStatus(0, "http-server;ssh\n")},
	}}
	c := NewClient(f, "my-project")

	tags, err := c.InstanceTags(context.Background(), "vm-1", "europe-west1-b")
	require.NoError(t, err)
	assert.Equal(t, []string{"http-server", "ssh"}, tags)
}

func TestLoginNoKeyIsNoop(t *testing.T) {
	f := &fakeRunner{}
	c := NewClient(f, "my-project")

	require.NoError(t, c.Login(context.Background(), ""))
	assert.Empty(t, f.calls)
}

func TestLogin(t *testing.T) {
	f := &fakeRunner{}
	c := NewClient(f, "my-project")

	require.NoError(t, c.Login(context.Background(), "/root/.config/gcloud/gcloudctl_key.json"))
	require.Len(t, f.calls, 1)
	assert.Contains(t, f.calls[0], "auth activate-service-account")
	assert.Contains(t, f.calls[0], "--key-file=/root/.config/gcloud/gcloudctl_key.json")
}

func TestLoginFailureIsFatal(t *testing.T) {
	f := &fakeRunner{rules: []rule{
		{match: "activate-service-account", status: command.NewStatus(1, "invalid key")},
	}}
	c := NewClient(f, "my-project")

	err := c.Login(context.Background(), "key.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key")
}
