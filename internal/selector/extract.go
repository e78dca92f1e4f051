package selector

import (
	"regexp"
	"strings"
)

// The model is instructed to announce its pick in bold followed by
// TERMINATE, but completions drift. These patterns are tried in order
// from most to least specific.
var extractPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)my fantasy football team is\s+\*\*(.*?)\*\*[.,]?\s*TERMINATE`),
	regexp.MustCompile(`I choose (?:\*\*)?(.*?)(?:\*\*)?\.\s*TERMINATE`),
	regexp.MustCompile(`(?i)I select ([^\n]+?)(?:\s+\*\*TERMINATE\*\*|\s*TERMINATE|\s*$)`),
	regexp.MustCompile(`\*\*(.*?)\*\*[.,\s]*TERMINATE`),
}

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// extractPlayerName pulls the chosen player name out of a completion.
// Falls back to the last bold phrase in the few lines before the final
// TERMINATE marker when no explicit selection phrasing matches.
func extractPlayerName(output string) (string, bool) {
	for _, pattern := range extractPatterns {
		if m := pattern.FindStringSubmatch(output); m != nil {
			name := strings.TrimSpace(strings.ReplaceAll(m[1], "**", ""))
			if name != "" {
				return name, true
			}
		}
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if !strings.Contains(lines[i], "TERMINATE") {
			continue
		}
		start := i - 5
		if start < 0 {
			start = 0
		}
		for j := start; j <= i; j++ {
			if m := boldPattern.FindStringSubmatch(lines[j]); m != nil {
				name := strings.TrimSpace(m[1])
				if name != "" {
					return name, true
				}
			}
		}
	}

	return "", false
}
