// Package prompt builds the system instructions sent to the language model.
// Everything here is pure: the same problem and gate state always yield the
// same instruction text.
package prompt

import (
	"fmt"
	"strings"

	"github.com/herupa/herupa-go-api/internal/models"
)

// Sentinel markers bounding the pseudocode portion of a reveal reply. They
// are a wire contract with the model: the builder instructs this format and
// the session layer parses it back out.
const (
	PseudocodeStart = "<<<PSEUDOCODE_START>>>"
	PseudocodeEnd   = "<<<PSEUDOCODE_END>>>"
)

// OpeningRequest is the fixed synthetic user message that kicks off a
// session. It is sent once with empty history and never stored as a turn,
// so the model's first real reply is not conditioned on it.
const OpeningRequest = "Please start our session by briefly acknowledging the problem and asking me one opening question about my approach."

const notAvailable = "Not available"

// Build produces the system instruction for one exchange. reveal selects
// the one-shot pseudocode mode; threshold is only quoted in the reveal
// wording.
func Build(problem models.Problem, reveal bool, threshold int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are Herupa, a Socratic programming tutor helping a student on %s.\n\n", problem.Platform.DisplayName())
	fmt.Fprintf(&b, "PROBLEM: %s\n", orFallback(problem.Title, "Unknown"))
	fmt.Fprintf(&b, "DIFFICULTY: %s\n\n", problem.Difficulty)

	b.WriteString("PROBLEM DESCRIPTION:\n")
	b.WriteString(orFallback(problem.Description, notAvailable))

	b.WriteString("\n\nEXAMPLES / TEST CASES:\n")
	b.WriteString(orFallback(strings.Join(problem.Examples, "\n\n"), notAvailable))

	b.WriteString("\n\nCONSTRAINTS:\n")
	b.WriteString(orFallback(problem.Constraints, notAvailable))

	b.WriteString(codeSection(problem))

	b.WriteString("\n\nYOUR ROLE:\n")
	if reveal {
		b.WriteString(revealInstruction(threshold))
	} else {
		b.WriteString(interrogateInstruction)
	}

	b.WriteString("\n\nTone: Encouraging, patient, like a senior dev doing code review. Never condescending.")

	return b.String()
}

// codeSection embeds the student's code fenced with its language tag. An
// absent editor is stated explicitly so the model never assumes a blank
// state silently.
func codeSection(problem models.Problem) string {
	if !problem.HasCode() {
		return "\n\nSTUDENT HAS NOT WRITTEN ANY CODE YET."
	}
	return fmt.Sprintf("\n\nSTUDENT'S CURRENT CODE (%s):\n```%s\n%s\n```",
		orFallback(problem.Language, "unknown"), problem.Language, problem.UserCode)
}

const interrogateInstruction = `NEVER give the actual answer or working code.
NEVER write code for them.
Ask ONE focused Socratic question that:
- Points to a flaw or gap in their thinking
- Guides them toward the right approach
- Relates to their actual code if they have any
Keep response SHORT (2-4 sentences) and end with a question.`

func revealInstruction(threshold int) string {
	return fmt.Sprintf(`The student has made %d attempts without solving it.
NOW you should:
1. Give a brief encouraging message
2. Provide PSEUDOCODE ONLY - not real code - that outlines the algorithm step by step
3. Wrap it: %s ... %s
4. After the block, ask them to now try implementing it`, threshold, PseudocodeStart, PseudocodeEnd)
}

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
