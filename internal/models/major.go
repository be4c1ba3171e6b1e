package models

import "strings"

// MajorPrefix extracts the curriculum lookup key from a raw major code.
// Codes are usually "<prefix>-<cohort>" (e.g. "TES-53E" -> "TES"); when no
// separator is present the first three characters are used, and codes
// shorter than that are taken whole.
func MajorPrefix(code string) string {
	code = strings.TrimSpace(code)
	if idx := strings.Index(code, "-"); idx >= 0 {
		return code[:idx]
	}
	if len(code) > 3 {
		return code[:3]
	}
	return code
}
