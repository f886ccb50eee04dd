package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/ascii-motion/observability"
)

// handleCrash restores the terminal, prints the panic with its stack trace and exits
// screen may be nil when no screen is active
func handleCrash(screen tcell.Screen, r any) {
	if screen != nil {
		screen.Fini()
	}
	observability.Sync()
	_ = os.Stdout.Sync()

	// \r\n keeps the trace readable if the terminal is still in raw mode
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mASCII-MOTION CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	_ = os.Stderr.Sync()

	os.Exit(1)
}

// guarded wraps an errgroup function so a panic inside it still resets the screen
// A panic in a goroutine never reaches main's recover
func guarded(screen tcell.Screen, fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				handleCrash(screen, r)
			}
		}()
		return fn()
	}
}
