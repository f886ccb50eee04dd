package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/ascii-motion/observability"
)

func main() {
	// Panic Recovery: play resets its own screen, so none is active here
	defer func() {
		if r := recover(); r != nil {
			handleCrash(nil, r)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := Execute(ctx)
	observability.Sync()
	if err != nil {
		os.Exit(1)
	}
}
