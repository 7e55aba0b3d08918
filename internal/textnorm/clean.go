package textnorm

import (
	"regexp"
	"strings"
)

var (
	reSpaces    = regexp.MustCompile(`[\s\x{00a0}\x{202f}]+`)
	reRefPrefix = regexp.MustCompile(`(?i)^\s*(r[ée]f(?:[ée]rences?)?\.?|n\s?[°º]\.?|no[:.]|num[ée]ro)\s*[:.]?\s*`)
)

// CollapseSpaces squashes runs of whitespace (including non-breaking
// spaces) into single spaces and trims the ends.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}

// StripRefPrefix removes a leading reference label ("Réf.", "N°", ...) so
// descriptions don't carry column-header debris.
func StripRefPrefix(s string) string {
	return strings.TrimSpace(reRefPrefix.ReplaceAllString(s, ""))
}
