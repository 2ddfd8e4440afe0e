package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cmd, cleanup := newCLI()
	err := cmd.ExecuteContext(ctx)
	if closeErr := cleanup(); err == nil {
		err = closeErr
	}
	stop()
	if err == nil {
		return
	}
	if !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "unitshift:", err)
	}
	os.Exit(exitCode(err))
}
