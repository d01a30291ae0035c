package service

import (
	"strings"

	"github.com/herupa/herupa-go-api/internal/prompt"
)

// revealSegments is a reveal-mode reply split around the pseudocode
// sentinels, with the markers themselves excluded from all three parts.
type revealSegments struct {
	Before     string
	Pseudocode string
	After      string
}

// splitReveal parses a reveal-mode reply back out of the sentinel format the
// prompt instructed. A reply missing either marker, or with the markers out
// of order, reports ok=false and is rendered as a single unsegmented block;
// that is a tolerated model non-compliance, not an error.
func splitReveal(text string) (revealSegments, bool) {
	start := strings.Index(text, prompt.PseudocodeStart)
	end := strings.Index(text, prompt.PseudocodeEnd)
	if start == -1 || end == -1 || end < start {
		return revealSegments{}, false
	}

	return revealSegments{
		Before:     strings.TrimSpace(text[:start]),
		Pseudocode: strings.TrimSpace(text[start+len(prompt.PseudocodeStart) : end]),
		After:      strings.TrimSpace(text[end+len(prompt.PseudocodeEnd):]),
	}, true
}
