package util

import "strings"

// NormalizeToken lowercases, trims, and collapses inner whitespace.
// Used for comparing free-text metadata values like vendor names.
func NormalizeToken(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(s))), " ")
}

// SanitizeName replaces non-alphanumeric chars with hyphens for config key names.
func SanitizeName(name string) string {
	result := make([]byte, 0, len(name))
	for i := 0; i < len(name); i++ {
		c := name[i]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' {
			result = append(result, c)
		} else {
			result = append(result, '-')
		}
	}
	return string(result)
}
