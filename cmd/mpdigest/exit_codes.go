package main

import (
	"errors"

	"github.com/alnah/go-mpdigest"
	"github.com/alnah/go-mpdigest/internal/config"
)

// Exit codes for the mpdigest CLI.
// Batch input and conversion failures are reported on stdout and exit 0,
// so scripts must read the output rather than the status.
const (
	ExitSuccess = 0 // Success, or a batch failure already reported on stdout
	ExitGeneral = 1 // Server failed to start or stopped abnormally
	ExitUsage   = 2 // Invalid flags, config, or options
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/option errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, mpdigest.ErrInvalidLayout) ||
		errors.Is(err, mpdigest.ErrInvalidDateFormat) {
		return ExitUsage
	}

	// Server errors (exit 1)
	if errors.Is(err, ErrServe) {
		return ExitGeneral
	}

	// Batch errors (exit 0, message already on stdout)
	if errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrDecodeInput) ||
		errors.Is(err, ErrInputShape) ||
		errors.Is(err, mpdigest.ErrHTMLGeneration) {
		return ExitSuccess
	}

	return ExitGeneral
}
