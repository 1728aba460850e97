// Package gcloudctl automates repeatable gcloud operations.
//
// The gcloudctl CLI wraps the gcloud command line tool, run either locally
// or inside one-shot Docker containers, for a handful of idempotent
// infrastructure tasks.
//
// # Overview
//
// The CLI provides:
//   - tags: ensure network tags are present on a VM
//   - disk: ensure a persistent disk exists and is attached
//   - create: list-then-create for arbitrary gcloud resource types
//   - run: authenticated passthrough to gcloud
//   - image-tags: Docker Hub tag discovery for the gcloud image
//
// # Installation
//
//	go install github.com/blackwell-systems/gcloudctl/cmd/gcloudctl@latest
//
// # Quick Start
//
//	gcloudctl tags -m my-vm -z europe-west1-b http-server
//	gcloudctl disk -m my-vm -z europe-west1-b -s 200GB -t pd-ssd
//	gcloudctl run --docker -k key.json -- compute instances list
//
// # Docker mode
//
// With --docker, every gcloud invocation runs in a fresh container of the
// configured image, with credentials held in a docker volume. The volume
// is transient and removed at exit, unless --volume names a persistent
// one to stay authenticated across runs.
package gcloudctl
