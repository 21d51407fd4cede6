// Package slug converts a visitor's name into the URL-safe route segment and back into a
// display name. The round trip is lossy: capitalization, spacing and punctuation of the
// original name cannot be recovered.
package slug

import (
	"strings"
	"unicode"
)

// Valid reports whether name can be submitted from the entry screen
func Valid(name string) bool {
	return strings.TrimSpace(name) != ""
}

// Slugify lowercases the trimmed name and replaces every rune outside [a-z0-9] with a hyphen.
// Runs of punctuation are not collapsed.
func Slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// DisplayName turns hyphens back into spaces and capitalizes the first letter of each word.
// An empty slug yields an empty name.
func DisplayName(s string) string {
	s = strings.ReplaceAll(s, "-", " ")

	runes := []rune(s)
	atBoundary := true
	for i, r := range runes {
		isWord := r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
		if isWord && atBoundary {
			runes[i] = unicode.ToUpper(r)
		}
		atBoundary = !isWord
	}
	return string(runes)
}

// Route is the path a slug is served under
func Route(s string) string {
	return "/" + s
}
