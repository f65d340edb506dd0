package domain

import (
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9-]+`)

// SlugPattern is the shape every stored slug must match.
var SlugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Slugify derives a URL-safe slug from a display name: lowercase, spaces to
// hyphens, everything else dropped.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = slugStrip.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}
