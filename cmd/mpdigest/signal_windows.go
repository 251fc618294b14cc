//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext bounds the server lifetime: the context ends on Ctrl+C or
// when stop is called. Windows has no SIGTERM.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
