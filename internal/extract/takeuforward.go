package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/herupa/herupa-go-api/internal/models"
)

const (
	tufMaxTags            = 10
	tufMaxTagLength       = 40
	tufMinStatementLength = 80
	tufMinParagraphLength = 20
	tufGreedyMaxChildren  = 20
	tufGreedyMaxLength    = 5000
	tufDescriptionCap     = 800
)

var tufTitleSuffixRe = regexp.MustCompile(`[-|].*$`)

var tufStatementSelectors = []string{
	`[class*="problem-statement"]`,
	`[class*="problemStatement"]`,
	`[class*="prose"]`,
	`[class*="description"]`,
	`[class*="markdown"]`,
	"article",
}

var numericTagRe = regexp.MustCompile(`^\d+$`)

func extractTakeUForward(doc *goquery.Document) models.Problem {
	problem := models.Problem{
		Platform:   models.PlatformTakeUForward,
		Difficulty: models.DifficultyUnknown,
	}

	problem.Title = tufTitle(doc)
	problem.Difficulty = tufDifficulty(doc)

	if statement := tufStatement(doc); statement != "" {
		parts := partitionStatement(statement, partitionOptions{
			allowInputMarker: true,
			descriptionCap:   tufDescriptionCap,
		})
		problem.Description = parts.Description
		problem.Examples = parts.Examples
		problem.Constraints = parts.Constraints
	}

	problem.Tags = tufTags(doc)
	return problem
}

// tufTitle picks the first heading that looks like a problem name rather
// than a navigation or hero banner, then falls back to the page title.
func tufTitle(doc *goquery.Document) string {
	title := ""
	doc.Find("h1, h2").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) > 2 && len(text) < 120 {
			title = text
			return false
		}
		return true
	})
	if title != "" {
		return title
	}
	return pageTitle(doc, tufTitleSuffixRe)
}

// tufDifficulty scans leaf elements for the fixed difficulty vocabulary.
// The pill carries no stable class on this site, so only exact leaf text
// counts.
func tufDifficulty(doc *goquery.Document) models.Difficulty {
	difficulty := models.DifficultyUnknown
	doc.Find("span, p, div, button, li").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.Children().Length() > 0 {
			return true
		}
		switch strings.ToLower(strings.TrimSpace(sel.Text())) {
		case "easy":
			difficulty = models.DifficultyEasy
		case "medium":
			difficulty = models.DifficultyMedium
		case "hard":
			difficulty = models.DifficultyHard
		default:
			return true
		}
		return false
	})
	return difficulty
}

func tufStatement(doc *goquery.Document) string {
	for _, selector := range tufStatementSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := blockText(sel); len(text) > tufMinStatementLength {
			return text
		}
	}

	if text := tufParagraphFallback(doc); text != "" {
		return text
	}

	return tufGreedyFallback(doc)
}

// tufParagraphFallback concatenates substantial paragraphs inside the main
// content region.
func tufParagraphFallback(doc *goquery.Document) string {
	main := doc.Find(`main, [role="main"], #root main, #__next main`).First()
	if main.Length() == 0 {
		return ""
	}

	var paragraphs []string
	main.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); len(text) > tufMinParagraphLength {
			paragraphs = append(paragraphs, text)
		}
	})
	return strings.Join(paragraphs, "\n\n")
}

// tufGreedyFallback selects the single largest text block under a shallow
// child-count cap. The upper length bound rejects whole-page containers.
func tufGreedyFallback(doc *goquery.Document) string {
	best := ""
	doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
		if sel.Children().Length() > tufGreedyMaxChildren {
			return
		}
		text := blockText(sel)
		if len(text) > len(best) && len(text) < tufGreedyMaxLength {
			best = text
		}
	})
	return best
}

// tufTags unions several badge-flavored class heuristics. Generic badge
// elements produce noise, so pure numbers and length outliers are dropped
// and the total is capped.
func tufTags(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, selector := range []string{`[class*="tag"]`, `[class*="chip"]`, `[class*="badge"]`, `[class*="topic"]`} {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			tag := strings.TrimSpace(sel.Text())
			if len(tag) <= 1 || len(tag) >= tufMaxTagLength || numericTagRe.MatchString(tag) {
				return
			}
			if _, ok := seen[tag]; ok {
				return
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		})
	}
	if len(tags) > tufMaxTags {
		tags = tags[:tufMaxTags]
	}
	return tags
}
