// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound suggests how to point at a config file.
func ForConfigNotFound(path string) string {
	if path == "" {
		return format("use --config /path/to/mpdigest.yaml")
	}
	return format("check that " + path + " exists, or drop --config to use defaults")
}

// ForListen returns hints for server listen errors.
func ForListen(addr string, err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "address already in use"):
		return format(addr + " is taken; pass --addr with a free port")
	case strings.Contains(msg, "permission denied"):
		return format("ports below 1024 need elevated privileges; try --addr :8000")
	}
	return ""
}

// ForLayout lists the accepted layout names.
func ForLayout(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
