// Package main implements the timension command, an operator CLI that
// prints the newspaper's generated content as JSON.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(defaultContentFactory).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
