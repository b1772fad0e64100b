package utils

import (
	"regexp"
	"strings"
)

var (
	specialCharPattern = regexp.MustCompile(`[^a-zA-Z0-9_\s.]`)
	planSuffixPattern  = regexp.MustCompile(`\s*(regular plan|reg|institutional plan|ex institutional plan|retail plan|long term plan)\s*$`)
)

// Normalize canonicalizes a scheme name for comparison: special characters
// removed, lowercased, trimmed, and one trailing plan qualifier stripped.
// The result is the key used everywhere scheme names are stored or looked up.
func Normalize(text string) string {
	text = specialCharPattern.ReplaceAllString(text, "")
	text = strings.ToLower(strings.TrimSpace(text))
	text = planSuffixPattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
