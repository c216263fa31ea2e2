package validation

import (
	"strings"
)

// NormalizeQuery trims surrounding whitespace and lowercases the query so
// lookups are case-insensitive.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// IsBlank reports whether the query is empty after trimming whitespace.
func IsBlank(query string) bool {
	return strings.TrimSpace(query) == ""
}
