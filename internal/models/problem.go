package models

import "strings"

// Platform identifies which problem site family a problem was read from.
type Platform string

const (
	PlatformLeetCode     Platform = "leetcode"
	PlatformTakeUForward Platform = "takeuforward"
)

// DisplayName returns the human-facing name of the platform.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformTakeUForward:
		return "TakeUForward (TUF+)"
	case PlatformLeetCode:
		return "LeetCode"
	default:
		return string(p)
	}
}

// Difficulty is the normalised difficulty label of a problem.
type Difficulty string

const (
	DifficultyEasy    Difficulty = "Easy"
	DifficultyMedium  Difficulty = "Medium"
	DifficultyHard    Difficulty = "Hard"
	DifficultyUnknown Difficulty = "Unknown"
)

// ParseDifficulty maps free-form difficulty text onto the fixed vocabulary.
// Matching is case-insensitive containment, first match wins.
func ParseDifficulty(text string) Difficulty {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "easy"):
		return DifficultyEasy
	case strings.Contains(lowered, "medium"):
		return DifficultyMedium
	case strings.Contains(lowered, "hard"):
		return DifficultyHard
	default:
		return DifficultyUnknown
	}
}

// Problem is an immutable snapshot of a practice problem assembled by the
// extraction engine. Description never contains the examples or constraints
// text; the extractor partitions the statement rather than duplicating it.
type Problem struct {
	Platform    Platform
	Title       string
	Difficulty  Difficulty
	Description string
	Examples    []string
	Constraints string
	Tags        []string
	UserCode    string
	Language    string
}

// HasCode reports whether any editor content could be read for the student.
func (p Problem) HasCode() bool {
	return strings.TrimSpace(p.UserCode) != ""
}

// CodeResult carries the editor contents and language read from a page.
// The two fields always travel together so a refresh never leaves one stale.
type CodeResult struct {
	UserCode string
	Language string
}

// WithCode returns a copy of the problem with only the code fields replaced.
// All other fields are carried over untouched, which is what a "re-read my
// code" refresh relies on.
func (p Problem) WithCode(code CodeResult) Problem {
	p.UserCode = code.UserCode
	p.Language = code.Language
	if p.Language == "" {
		p.Language = "unknown"
	}
	return p
}
