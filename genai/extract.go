package genai

import (
	"regexp"
	"strings"
)

// Generators wrap JSON payloads in markdown code fences more often than not,
// with or without a language tag. These match a run of backticks or tildes at
// either end of the (trimmed) response.
var (
	fenceOpenRe  = regexp.MustCompile("^(?:`{3,}|~{3,})[a-zA-Z0-9]*[ \t]*\r?\n?")
	fenceCloseRe = regexp.MustCompile("(?:`{3,}|~{3,})[ \t]*$")
)

// Extract strips leading and trailing code fences and surrounding
// whitespace from a raw generator response. Runs to a fixpoint, so it is
// idempotent and already-clean text passes through unchanged. No structural
// validation happens here.
func Extract(raw string) string {
	s := strings.TrimSpace(raw)
	for {
		next := fenceOpenRe.ReplaceAllString(s, "")
		next = fenceCloseRe.ReplaceAllString(next, "")
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
}
