package utils

import (
	"regexp"
	"strings"
)

var (
	imageExtension = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp|svg)$`)
	absoluteURL    = regexp.MustCompile(`(?i)^https?://`)
)

// IsValidImagePath reports whether value is usable as a stored image
// reference: an absolute http(s) URL (any extension), or an absolute local
// path ending in a recognized image extension.
func IsValidImagePath(value string) bool {
	if value == "" {
		return false
	}
	if absoluteURL.MatchString(value) {
		return true
	}
	return strings.HasPrefix(value, "/") && imageExtension.MatchString(value)
}

// MissingFields returns the names from required that are absent or empty in
// the payload. Numeric zero counts as present; empty strings and nulls do not.
func MissingFields(payload map[string]interface{}, required []string) []string {
	var missing []string
	for _, name := range required {
		value, ok := payload[name]
		if !ok || value == nil {
			missing = append(missing, name)
			continue
		}
		if s, isString := value.(string); isString && strings.TrimSpace(s) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
