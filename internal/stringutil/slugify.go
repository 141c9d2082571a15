package stringutil

import (
	"regexp"
	"strings"
)

const maxSlugLen = 48

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases name and joins its alphanumeric runs with hyphens,
// cutting the result at a hyphen once it passes 48 characters.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
		if i := strings.LastIndexByte(s, '-'); i > 0 {
			s = s[:i]
		}
	}
	return s
}

// FileName returns a file name for an event message, e.g.
// "Lunch with Bob!" and ".ics" give "lunch-with-bob.ics". An empty slug
// falls back to "event".
func FileName(message, ext string) string {
	slug := Slugify(message)
	if slug == "" {
		slug = "event"
	}
	return slug + ext
}
