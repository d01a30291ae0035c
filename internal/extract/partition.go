package extract

import (
	"regexp"
	"strings"
)

// statementParts is the result of splitting a raw statement block into the
// three sections of a problem. Partitioning never duplicates text: the
// description excludes everything from the first example or constraints
// marker onward.
type statementParts struct {
	Description string
	Examples    []string
	Constraints string
}

type partitionOptions struct {
	// allowInputMarker treats a bare "Input:" line as the start of the
	// example region, which some statements use instead of "Example N:".
	allowInputMarker bool
	// descriptionCap truncates the description when no marker was found,
	// so an unbounded fallback block cannot flood the prompt. Zero means
	// no cap.
	descriptionCap int
}

var (
	exampleMarkerRe  = regexp.MustCompile(`(?i)Example\s*\d*\s*:`)
	inputMarkerRe    = regexp.MustCompile(`(?im)^\s*Input\s*:`)
	constraintsRe    = regexp.MustCompile(`(?i)Constraints\s*:`)
	noteFollowUpRe   = regexp.MustCompile(`(?im)^\s*(Note|Follow[ -]?up)\s*:?`)
	minExampleLength = 5
)

// partitionStatement splits raw statement text into description, example
// blocks, and constraints.
func partitionStatement(text string, opts partitionOptions) statementParts {
	text = strings.TrimSpace(text)
	if text == "" {
		return statementParts{}
	}

	exampleStart := firstMarkerIndex(text, opts)
	constraintsLoc := constraintsRe.FindStringIndex(text)

	parts := statementParts{
		Description: descriptionBefore(text, exampleStart, constraintsLoc, opts),
		Examples:    exampleBlocks(text, constraintsLoc),
	}

	if constraintsLoc != nil {
		after := text[constraintsLoc[1]:]
		if note := noteFollowUpRe.FindStringIndex(after); note != nil {
			after = after[:note[0]]
		}
		parts.Constraints = strings.TrimSpace(after)
	}

	return parts
}

func firstMarkerIndex(text string, opts partitionOptions) int {
	idx := -1
	if loc := exampleMarkerRe.FindStringIndex(text); loc != nil {
		idx = loc[0]
	}
	if opts.allowInputMarker {
		if loc := inputMarkerRe.FindStringIndex(text); loc != nil && (idx == -1 || loc[0] < idx) {
			idx = loc[0]
		}
	}
	return idx
}

func descriptionBefore(text string, exampleStart int, constraintsLoc []int, opts partitionOptions) string {
	cut := exampleStart
	if constraintsLoc != nil && (cut == -1 || constraintsLoc[0] < cut) {
		cut = constraintsLoc[0]
	}

	if cut == -1 {
		if opts.descriptionCap > 0 && len(text) > opts.descriptionCap {
			return strings.TrimSpace(text[:opts.descriptionCap])
		}
		return text
	}
	return strings.TrimSpace(text[:cut])
}

// exampleBlocks collects every "Example N:" block, each running until the
// next example marker, the constraints marker, or the end of the text.
func exampleBlocks(text string, constraintsLoc []int) []string {
	markers := exampleMarkerRe.FindAllStringIndex(text, -1)
	if len(markers) == 0 {
		return nil
	}

	end := len(text)
	if constraintsLoc != nil {
		end = constraintsLoc[0]
	}

	var blocks []string
	for i, marker := range markers {
		if marker[0] >= end {
			break
		}
		stop := end
		if i+1 < len(markers) && markers[i+1][0] < end {
			stop = markers[i+1][0]
		}
		block := strings.TrimSpace(text[marker[0]:stop])
		if len(block) > minExampleLength {
			blocks = append(blocks, block)
		}
	}
	return blocks
}
