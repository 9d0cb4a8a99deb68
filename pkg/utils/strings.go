package utils

import "strings"

// CompactStrings trims surrounding whitespace from every element and drops
// the ones that end up empty. The input slice is left untouched.
func CompactStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if trimmed := strings.TrimSpace(s); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
