package utils

import "strings"

// ValidateRequired checks an ordered list of name/value pairs and returns a
// field-level message for the first empty value, or "" when all are present.
func ValidateRequired(pairs ...string) string {
	for i := 0; i+1 < len(pairs); i += 2 {
		if strings.TrimSpace(pairs[i+1]) == "" {
			return pairs[i] + " is required"
		}
	}
	return ""
}
