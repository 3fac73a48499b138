package parser

import "strings"

// StripCodeFences removes a leading code-fence marker (optionally with a
// language tag) and a trailing marker from the oracle's text. The oracle is
// asked for raw JSON but is not guaranteed to comply. Stripping unfenced
// text is a no-op, so the function is idempotent.
func StripCodeFences(text string) string {
	s := strings.TrimSpace(text)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
