package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/blackwell-systems/gcloudctl/internal/cli"
	"github.com/blackwell-systems/gcloudctl/internal/config"
)

var version = "dev"

func main() {
	// A signal cancels the context; running subprocesses are killed and
	// the deferred volume cleanup inside the commands still runs.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		stop()
		os.Exit(1)
	}

	code := cli.Execute(ctx, version)
	stop()
	os.Exit(code)
}
