package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const twoSumStatement = `Given an array of integers nums and an integer target, return indices of the two numbers such that they add up to target.

You may assume that each input would have exactly one solution.

Example 1:
Input: nums = [2,7,11,15], target = 9
Output: [0,1]

Example 2:
Input: nums = [3,2,4], target = 6
Output: [1,2]

Constraints:
2 <= nums.length <= 10^4
-10^9 <= nums[i] <= 10^9`

func TestPartitionStatementSplitsSections(t *testing.T) {
	parts := partitionStatement(twoSumStatement, partitionOptions{})

	require.Contains(t, parts.Description, "return indices of the two numbers")
	require.Contains(t, parts.Description, "exactly one solution")
	require.Len(t, parts.Examples, 2)
	require.Contains(t, parts.Examples[0], "Example 1:")
	require.Contains(t, parts.Examples[0], "Output: [0,1]")
	require.Contains(t, parts.Examples[1], "Example 2:")
	require.Contains(t, parts.Constraints, "2 <= nums.length")
}

func TestPartitionStatementDescriptionExcludesLaterSections(t *testing.T) {
	parts := partitionStatement(twoSumStatement, partitionOptions{})

	require.NotContains(t, parts.Description, "Example 1:")
	require.NotContains(t, parts.Description, "Constraints:")
	require.NotContains(t, parts.Description, "nums.length")
	for _, example := range parts.Examples {
		require.NotContains(t, example, "Constraints:")
	}
	require.NotContains(t, parts.Constraints, "Example")
}

func TestPartitionStatementNoMarkers(t *testing.T) {
	parts := partitionStatement("Just a plain description with no sections at all.", partitionOptions{})

	require.Equal(t, "Just a plain description with no sections at all.", parts.Description)
	require.Empty(t, parts.Examples)
	require.Empty(t, parts.Constraints)
}

func TestPartitionStatementInputMarker(t *testing.T) {
	text := "Reverse the given linked list.\nInput: head = [1,2,3]\nOutput: [3,2,1]"

	withMarker := partitionStatement(text, partitionOptions{allowInputMarker: true})
	require.Equal(t, "Reverse the given linked list.", withMarker.Description)

	withoutMarker := partitionStatement(text, partitionOptions{})
	require.Contains(t, withoutMarker.Description, "Input: head")
}

func TestPartitionStatementDescriptionCap(t *testing.T) {
	long := strings.Repeat("word ", 400)

	parts := partitionStatement(long, partitionOptions{descriptionCap: 100})
	require.LessOrEqual(t, len(parts.Description), 100)

	uncapped := partitionStatement(long, partitionOptions{})
	require.Greater(t, len(uncapped.Description), 100)
}

func TestPartitionStatementCapIgnoredWhenMarkersPresent(t *testing.T) {
	parts := partitionStatement(twoSumStatement, partitionOptions{descriptionCap: 40})

	require.Contains(t, parts.Description, "exactly one solution")
	require.Len(t, parts.Examples, 2)
}

func TestPartitionStatementConstraintsStopAtFollowUp(t *testing.T) {
	text := `Count the islands.

Example 1:
Input: grid
Output: 3

Constraints:
1 <= m, n <= 300

Follow-up: can you solve it in O(1) space?`

	parts := partitionStatement(text, partitionOptions{})
	require.Contains(t, parts.Constraints, "1 <= m, n <= 300")
	require.NotContains(t, parts.Constraints, "Follow-up")
}

func TestPartitionStatementTinyExamplesDropped(t *testing.T) {
	text := "Do the thing.\n\nExample:\n\nConstraints:\n1 <= n <= 10"

	parts := partitionStatement(text, partitionOptions{})
	require.Empty(t, parts.Examples)
	require.Contains(t, parts.Constraints, "1 <= n <= 10")
}

func TestPartitionStatementEmpty(t *testing.T) {
	parts := partitionStatement("   \n\t ", partitionOptions{})
	require.Equal(t, statementParts{}, parts)
}
