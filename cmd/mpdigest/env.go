package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/alnah/go-mpdigest/internal/fileutil"
)

// maxInputSize caps the batch input file.
const maxInputSize = 16 << 20

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now      func() time.Time
	Stdout   io.Writer
	Stderr   io.Writer
	ReadFile func(path string) ([]byte, error)
	// SignalContext derives the server lifetime context.
	SignalContext func(parent context.Context) (context.Context, context.CancelFunc)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		ReadFile: func(path string) ([]byte, error) {
			return fileutil.ReadLimited(path, maxInputSize)
		},
		SignalContext: notifyContext,
	}
}
