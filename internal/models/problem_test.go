package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"Easy":               DifficultyEasy,
		"  medium  ":         DifficultyMedium,
		"HARD":               DifficultyHard,
		"Difficulty: Medium": DifficultyMedium,
		"trivial":            DifficultyUnknown,
		"":                   DifficultyUnknown,
	}

	for input, want := range cases {
		require.Equal(t, want, ParseDifficulty(input), "%q", input)
	}
}

func TestPlatformDisplayName(t *testing.T) {
	require.Equal(t, "LeetCode", PlatformLeetCode.DisplayName())
	require.Equal(t, "TakeUForward (TUF+)", PlatformTakeUForward.DisplayName())
	require.Equal(t, "other", Platform("other").DisplayName())
}

func TestProblemHasCode(t *testing.T) {
	require.False(t, Problem{}.HasCode())
	require.False(t, Problem{UserCode: "   \n"}.HasCode())
	require.True(t, Problem{UserCode: "x = 1"}.HasCode())
}

func TestProblemWithCode(t *testing.T) {
	problem := Problem{
		Platform:    PlatformLeetCode,
		Title:       "Two Sum",
		Difficulty:  DifficultyEasy,
		Description: "desc",
		Examples:    []string{"Example 1: foo"},
		Constraints: "1 <= n",
		Tags:        []string{"Array"},
		UserCode:    "old",
		Language:    "python",
	}

	merged := problem.WithCode(CodeResult{UserCode: "new", Language: "go"})
	require.Equal(t, "new", merged.UserCode)
	require.Equal(t, "go", merged.Language)
	require.Equal(t, problem.Title, merged.Title)
	require.Equal(t, problem.Examples, merged.Examples)
	require.Equal(t, problem.Tags, merged.Tags)

	cleared := problem.WithCode(CodeResult{})
	require.Empty(t, cleared.UserCode)
	require.Equal(t, "unknown", cleared.Language)
}
