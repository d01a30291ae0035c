package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/herupa/herupa-go-api/internal/models"
)

const tufPage = `<html>
<head><title>Reverse a Linked List | TakeUForward</title></head>
<body>
<nav><div class="nav-badge">42</div></nav>
<main>
<h1>Reverse a Linked List</h1>
<span>Medium</span>
<div class="problem-statement">
<p>Given the head of a singly linked list, reverse the list and return the head of the reversed list. The reversal must be done in place without allocating new nodes.</p>
<p>Input: head = [1, 2, 3, 4, 5]</p>
<p>Output: [5, 4, 3, 2, 1]</p>
<p>Constraints: 1 &lt;= n &lt;= 10^5</p>
</div>
<span class="tag-pill">Linked List</span>
<span class="tag-pill">Two Pointers</span>
<span class="tag-pill">7</span>
</main>
</body>
</html>`

func TestExtractTakeUForward(t *testing.T) {
	engine := NewEngine(zerolog.Nop())

	problem, err := engine.Extract(Snapshot{
		URL:  "https://takeuforward.org/plus/dsa/problems/reverse-a-linked-list",
		HTML: tufPage,
	})
	require.NoError(t, err)

	require.Equal(t, models.PlatformTakeUForward, problem.Platform)
	require.Equal(t, "Reverse a Linked List", problem.Title)
	require.Equal(t, models.DifficultyMedium, problem.Difficulty)

	require.Contains(t, problem.Description, "reverse the list")
	require.NotContains(t, problem.Description, "Input:")
	require.Contains(t, problem.Constraints, "1 <= n <= 10^5")

	require.Contains(t, problem.Tags, "Linked List")
	require.Contains(t, problem.Tags, "Two Pointers")
	require.NotContains(t, problem.Tags, "7")
	require.NotContains(t, problem.Tags, "42")
}

func TestTufTagCapAndFilters(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 15; i++ {
		fmt.Fprintf(&b, `<span class="tag">Topic %c</span>`, 'A'+i)
	}
	b.WriteString(`<span class="tag">123</span>`)
	b.WriteString(`<span class="tag">` + strings.Repeat("x", 60) + `</span>`)
	b.WriteString("</body></html>")

	engine := NewEngine(zerolog.Nop())
	problem, err := engine.Extract(Snapshot{
		URL:  "https://takeuforward.org/plus/dsa/problems/anything",
		HTML: b.String(),
	})
	require.NoError(t, err)

	require.Len(t, problem.Tags, 10)
	require.NotContains(t, problem.Tags, "123")
	for _, tag := range problem.Tags {
		require.Less(t, len(tag), 40)
	}
}

func TestTufParagraphFallback(t *testing.T) {
	page := `<html><body><main>
<h2>Binary Search</h2>
<p>hi</p>
<p>Given a sorted array of integers, find the index of the target value using binary search.</p>
<p>Return minus one when the target is absent from the array entirely.</p>
</main></body></html>`

	engine := NewEngine(zerolog.Nop())
	problem, err := engine.Extract(Snapshot{
		URL:  "https://takeuforward.org/plus/dsa/problems/binary-search",
		HTML: page,
	})
	require.NoError(t, err)

	require.Equal(t, "Binary Search", problem.Title)
	require.Contains(t, problem.Description, "binary search")
	require.Contains(t, problem.Description, "minus one")
	require.NotContains(t, problem.Description, "hi")
}

func TestTufDescriptionCapWithoutMarkers(t *testing.T) {
	page := fmt.Sprintf(`<html><body><main>
<h1>Long Winded Problem</h1>
<div class="problem-statement"><p>%s</p></div>
</main></body></html>`, strings.Repeat("All work and no markers makes a very long statement. ", 50))

	engine := NewEngine(zerolog.Nop())
	problem, err := engine.Extract(Snapshot{
		URL:  "https://takeuforward.org/plus/dsa/problems/long-winded",
		HTML: page,
	})
	require.NoError(t, err)
	require.LessOrEqual(t, len(problem.Description), 800)
}

func TestTufTitleFallsBackToPageTitle(t *testing.T) {
	page := `<html><head><title>Reverse a Linked List | TakeUForward</title></head><body></body></html>`

	engine := NewEngine(zerolog.Nop())
	problem, err := engine.Extract(Snapshot{
		URL:  "https://takeuforward.org/plus/dsa/problems/reverse-a-linked-list",
		HTML: page,
	})
	require.NoError(t, err)
	require.Equal(t, "Reverse a Linked List", problem.Title)
	require.Equal(t, models.DifficultyUnknown, problem.Difficulty)
}
