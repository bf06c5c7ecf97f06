package utils

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify turns a display name into a URL-safe id candidate: lowercase,
// runs of non-alphanumeric characters collapsed to a single dash, leading
// and trailing dashes trimmed. "Filter Coffee" -> "filter-coffee".
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
