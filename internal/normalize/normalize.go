// Package normalize canonicalizes player name strings so the same human
// maps to one key across every source table. Every name-bearing column
// must pass through Normalize before any cross-source join; a missed
// variant silently creates an orphan row the fusion engine cannot
// reconcile.
package normalize

import (
	"regexp"
	"strings"
)

var (
	suffixPattern     = regexp.MustCompile(`\s+\b(Jr|Sr|II|III|IV|V)\b\.?$`)
	punctuation       = strings.NewReplacer(".", "", "'", "")
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Normalize strips generational suffixes (Jr., Sr., II-V), removes
// periods and apostrophes, lower-cases, and collapses whitespace.
// Idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw string) string {
	name := strings.TrimSpace(raw)
	name = suffixPattern.ReplaceAllString(name, "")
	name = punctuation.Replace(name)
	name = strings.ToLower(name)
	name = whitespacePattern.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
