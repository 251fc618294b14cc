package mpdigest

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilRequest        = errors.New("convert request cannot be nil")
	ErrInvalidLayout     = errors.New("invalid layout")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrHTMLGeneration    = errors.New("HTML generation failed")
)
