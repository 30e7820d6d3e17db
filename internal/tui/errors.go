package tui

import "strings"

// humanizeTransportError replaces the raw dial error soup with a short
// message the user can act on.
func humanizeTransportError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") ||
		strings.Contains(s, "server unavailable") {
		return "Server is unreachable. Check your network and try again."
	}

	return err.Error()
}
