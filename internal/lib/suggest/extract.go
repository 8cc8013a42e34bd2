package suggest

import (
	"regexp"
	"strings"
)

// Models frequently wrap JSON in markdown code fences despite instructions
// not to. Both the ```json and the bare ``` variants show up in practice.
var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	bareFenceRe = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// extractJSON strips markdown code fences and surrounding whitespace from
// raw model output, leaving the text to be JSON-parsed. It does not parse;
// invalid content passes through for the caller to reject.
func extractJSON(text string) string {
	cleaned := strings.TrimSpace(text)

	if strings.Contains(cleaned, "```json") {
		if m := jsonFenceRe.FindStringSubmatch(cleaned); m != nil {
			cleaned = m[1]
		}
	} else if strings.Contains(cleaned, "```") {
		if m := bareFenceRe.FindStringSubmatch(cleaned); m != nil {
			cleaned = m[1]
		}
	}

	// Unbalanced fences slip past the regexes
	cleaned = strings.TrimSpace(cleaned)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	return strings.TrimSpace(cleaned)
}
