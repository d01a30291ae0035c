package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/herupa/herupa-go-api/internal/models"
)

func sampleProblem() models.Problem {
	return models.Problem{
		Platform:    models.PlatformLeetCode,
		Title:       "Two Sum",
		Difficulty:  models.DifficultyEasy,
		Description: "Return indices of the two numbers that add up to target.",
		Examples:    []string{"Example 1:\nInput: [2,7], target 9\nOutput: [0,1]"},
		Constraints: "2 <= nums.length <= 10^4",
	}
}

func TestBuildInterrogateMode(t *testing.T) {
	text := Build(sampleProblem(), false, 3)

	require.Contains(t, text, "Socratic programming tutor")
	require.Contains(t, text, "LeetCode")
	require.Contains(t, text, "PROBLEM: Two Sum")
	require.Contains(t, text, "DIFFICULTY: Easy")
	require.Contains(t, text, "Return indices of the two numbers")
	require.Contains(t, text, "Output: [0,1]")
	require.Contains(t, text, "2 <= nums.length <= 10^4")
	require.Contains(t, text, "NEVER give the actual answer")
	require.Contains(t, text, "STUDENT HAS NOT WRITTEN ANY CODE YET.")

	require.NotContains(t, text, PseudocodeStart)
	require.NotContains(t, text, PseudocodeEnd)
}

func TestBuildRevealMode(t *testing.T) {
	text := Build(sampleProblem(), true, 3)

	require.Contains(t, text, "made 3 attempts")
	require.Contains(t, text, "PSEUDOCODE ONLY")
	require.Contains(t, text, PseudocodeStart)
	require.Contains(t, text, PseudocodeEnd)
	require.NotContains(t, text, "NEVER give the actual answer")
}

func TestBuildMissingFieldsFallBack(t *testing.T) {
	problem := models.Problem{
		Platform:   models.PlatformTakeUForward,
		Difficulty: models.DifficultyUnknown,
	}

	text := Build(problem, false, 3)

	require.Contains(t, text, "TakeUForward (TUF+)")
	require.Contains(t, text, "PROBLEM: Unknown")
	require.Equal(t, 3, strings.Count(text, "Not available"))
}

func TestBuildEmbedsStudentCode(t *testing.T) {
	problem := sampleProblem()
	problem.UserCode = "def two_sum(nums, target):\n    pass"
	problem.Language = "python"

	text := Build(problem, false, 3)

	require.Contains(t, text, "STUDENT'S CURRENT CODE (python):")
	require.Contains(t, text, "```python\ndef two_sum(nums, target):\n    pass\n```")
	require.NotContains(t, text, "STUDENT HAS NOT WRITTEN ANY CODE YET.")
}

func TestBuildDeterministic(t *testing.T) {
	problem := sampleProblem()
	require.Equal(t, Build(problem, true, 5), Build(problem, true, 5))
}
