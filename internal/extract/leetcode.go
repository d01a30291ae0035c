package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/herupa/herupa-go-api/internal/models"
)

var leetTitleSuffixRe = regexp.MustCompile(`\s*-\s*LeetCode\s*$`)

var leetTitleStrategies = []strategy{
	selectorStrategy("question-title", `[data-cy="question-title"]`),
	selectorStrategy("h1", "h1"),
	selectorStrategy("title-large", ".text-title-large"),
}

var leetStatementStrategies = []strategy{
	selectorStrategy("description-content", `[data-track-load="description_content"]`),
	selectorStrategy("elfjs", ".elfjS"),
	selectorStrategy("question-content-hashed", `.question-content__JfgR`),
	selectorStrategy("question-content-any", `[class*="question-content"]`),
}

const leetDifficultySelector = `.text-difficulty-easy, .text-difficulty-medium, .text-difficulty-hard, [class*="difficulty"]`

func extractLeetCode(doc *goquery.Document) models.Problem {
	problem := models.Problem{
		Platform:   models.PlatformLeetCode,
		Difficulty: models.DifficultyUnknown,
	}

	title, _ := resolve(doc, leetTitleStrategies)
	if title == "" {
		title = pageTitle(doc, leetTitleSuffixRe)
	}
	problem.Title = title

	if region := doc.Find(leetDifficultySelector).First(); region.Length() > 0 {
		problem.Difficulty = models.ParseDifficulty(region.Text())
	}

	if statement, _ := resolve(doc, leetStatementStrategies); statement != "" {
		parts := partitionStatement(statement, partitionOptions{})
		problem.Description = parts.Description
		problem.Examples = parts.Examples
		problem.Constraints = parts.Constraints
	}

	problem.Tags = leetTags(doc)
	return problem
}

func leetTags(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var tags []string
	doc.Find(`[class*="topic-tag"], a[href*="/tag/"]`).Each(func(_ int, sel *goquery.Selection) {
		tag := strings.TrimSpace(sel.Text())
		if tag == "" {
			return
		}
		if _, ok := seen[tag]; ok {
			return
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	})
	return tags
}
