// synctl is a command line client for a Synapse-compatible repository,
// addressing entities by path instead of by accession id.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/c2fo/synfs/synctl/internal/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.NewRoot().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
