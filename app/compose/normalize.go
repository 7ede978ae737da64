package compose

import (
	"strings"
)

const ellipsis = "…"

// Normalize collapses whitespace runs to single spaces, trims the result and
// truncates it to max runes, marking truncation with an ellipsis. The result
// never exceeds max runes.
func Normalize(text string, max int) string {
	collapsed := strings.Join(strings.Fields(text), " ")
	if max <= 0 {
		return collapsed
	}

	runes := []rune(collapsed)
	if len(runes) <= max {
		return collapsed
	}

	return string(runes[:max-1]) + ellipsis
}
