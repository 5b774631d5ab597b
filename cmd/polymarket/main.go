// Command polymarket is the CLI entry point. It wires signal handling to
// a cancellable context and delegates everything else to the command
// tree; an interrupt aborts the in-flight operation.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cyptokoz-svg/polymarket-cli/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(cli.Execute(ctx))
}
