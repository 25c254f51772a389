package utils

import "unicode/utf8"

// TruncateWithEllipsis shortens s to fit max runes: strings of max runes or
// more are cut to max-3 runes with "..." appended.
func TruncateWithEllipsis(s string, max int) string {
	if utf8.RuneCountInString(s) < max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
