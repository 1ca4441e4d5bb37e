// Package main provides the cubicconf CLI process entrypoint.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rbright/cubicconf/internal/app"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run scopes the signal context so it is released before the process exits.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Execute(ctx, args, os.Stdout, os.Stderr)
}
