package services

import (
	"strings"
	"unicode"
)

// Slugify lower-cases value and collapses each whitespace run into a single
// dash. Other characters are kept and uniqueness is not checked.
func Slugify(value string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.ToLower(value) {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteRune('-')
				inSpace = true
			}
			continue
		}
		b.WriteRune(r)
		inSpace = false
	}
	return b.String()
}
