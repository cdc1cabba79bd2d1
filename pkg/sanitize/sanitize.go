// Package sanitize normalizes editor-supplied strings before they reach storage.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	tagPattern = regexp.MustCompile(`<[^>]*>`)
	keyPattern = regexp.MustCompile(`[^a-z0-9_\-]`)
)

// Text strips markup and collapses all whitespace, including line breaks and tabs, to single spaces.
func Text(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// Key lowercases s and keeps only characters valid in a slug-like key.
func Key(s string) string {
	return keyPattern.ReplaceAllString(strings.ToLower(s), "")
}
