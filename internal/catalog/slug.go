package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderSlug is used when slugification leaves nothing behind, e.g.
// for labels written entirely in a non-Latin script.
const placeholderSlug = "category"

var (
	slugStripRe    = regexp.MustCompile(`[^a-z0-9\s_-]`)
	slugHyphenRe   = regexp.MustCompile(`[\s_]+`)
	slugCollapseRe = regexp.MustCompile(`-+`)
)

// Slugify normalizes free text into a URL-safe identifier: lowercased,
// non-alphanumerics stripped, whitespace and underscores collapsed to
// single hyphens, leading/trailing hyphens trimmed.
func Slugify(text string) string {
	s := strings.ToLower(strings.TrimSpace(text))
	s = slugStripRe.ReplaceAllString(s, "")
	s = slugHyphenRe.ReplaceAllString(s, "-")
	s = strings.Trim(slugCollapseRe.ReplaceAllString(s, "-"), "-")
	if s == "" {
		return placeholderSlug
	}
	return s
}

// uniqueSlug appends -2, -3, ... until the slug does not collide with an
// existing category.
func uniqueSlug(base string, existing map[string]bool) string {
	slug := base
	for i := 2; existing[slug]; i++ {
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return slug
}
