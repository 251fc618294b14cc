// Package fileutil provides bounded file reads and existence checks.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrFileTooLarge indicates a file exceeds the caller's read limit.
var ErrFileTooLarge = errors.New("file exceeds size limit")

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// ReadLimited reads the whole file, failing with ErrFileTooLarge when it
// is longer than limit bytes. Errors from os.Open are returned unwrapped so
// callers can test them with errors.Is(err, fs.ErrNotExist).
func ReadLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- path is chosen by the operator
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: %s (max %d bytes)", ErrFileTooLarge, path, limit)
	}
	return data, nil
}
