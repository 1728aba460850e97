package gcloud

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"regexp"

	"github.com/blackwell-systems/gcloudctl/internal/command"
)

// KeyFile is the subset of a service-account key file we read.
type KeyFile struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	ClientEmail string `json:"client_email"`
}

// ReadKeyFile parses a service-account key file.
func ReadKeyFile(path string) (*KeyFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	var key KeyFile
	if err := json.Unmarshal(data, &key); err != nil {
		return nil, fmt.Errorf("parsing key file %s: %w", path, err)
	}
	return &key, nil
}

// saEmail captures the project id embedded in a service-account email.
var saEmail = regexp.MustCompile(`^[^@]+@([a-z][-a-z0-9]*)\.iam\.gserviceaccount\.com$`)

// ProjectFromAccount extracts the project id from a service-account email,
// or "" when the account is not a per-project service account.
func ProjectFromAccount(account string) string {
	m := saEmail.FindStringSubmatch(account)
	if m == nil {
		return ""
	}
	return m[1]
}

// ActiveAccount returns the account gcloud currently considers active, via
// the given runner. Unlike Client methods this runs without a project flag,
// since it is used while the project is still being resolved.
func ActiveAccount(ctx context.Context, r command.Runner) (string, error) {
	status, err := r.Run(ctx, Executable,
		"auth", "list",
		"--filter=status:ACTIVE",
		"--format=value(account)",
	)
	if err != nil {
		return "", err
	}
	if !status.Success() {
		return "", fmt.Errorf("gcloud auth list failed: %s", status.OutputTrimNL())
	}
	return status.OutputTrimNL(), nil
}

// ResolveProject determines the project id: an explicit flag wins, then the
// project_id of the key file, then — when a runner with pre-existing
// credentials is supplied — the project embedded in the active
// service-account email. Running without a resolvable project is an error;
// no cloud call may be made before this succeeds.
func ResolveProject(ctx context.Context, explicit, keyPath string, r command.Runner) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	if keyPath != "" {
		key, err := ReadKeyFile(keyPath)
		if err != nil {
			return "", err
		}
		if key.ProjectID != "" {
			return key.ProjectID, nil
		}
	}

	if r != nil {
		account, err := ActiveAccount(ctx, r)
		if err != nil {
			return "", err
		}
		if project := ProjectFromAccount(account); project != "" {
			return project, nil
		}
	}

	return "", fmt.Errorf("no project id could be resolved; use --project or a key file with a project_id")
}
