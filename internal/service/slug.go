package service

import (
	"regexp"
	"strings"
)

const maxSlugLength = 50

var (
	slugStripPattern  = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugSpacePattern  = regexp.MustCompile(`[\s_]+`)
	slugHyphenPattern = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a portal slug from an organization name: lowercase, special
// characters removed, whitespace runs become hyphens, hyphen runs collapse, at most
// 50 characters.
func GenerateSlug(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	s = slugStripPattern.ReplaceAllString(s, "")
	s = slugSpacePattern.ReplaceAllString(s, "-")
	s = slugHyphenPattern.ReplaceAllString(s, "-")
	if len(s) > maxSlugLength {
		s = s[:maxSlugLength]
	}
	return s
}
