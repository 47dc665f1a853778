package util

import (
	"strings"
)

// Truncate shortens a string to fit a table cell, appending an
// ellipsis when anything was cut.
func Truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

// IsObjectID checks if a string looks like a backend object id
// (24 hex characters). Not a comprehensive validation, but enough to
// catch pasted names or truncated ids before a request goes out.
func IsObjectID(str string) bool {
	if len(str) != 24 {
		return false
	}
	for _, r := range strings.ToLower(str) {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
