package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/herupa/herupa-go-api/internal/models"
)

const unknownLanguage = "unknown"

// languageProbeSelectors are elements that tend to show the active editor
// language when the editor itself did not report one.
var languageProbeSelectors = []string{
	`[data-cy="lang-select"]`,
	`button[class*="lang"]`,
	`[class*="language"] button`,
	`select[class*="lang"] option[selected]`,
}

// codeFromSnapshot reads the student's in-progress code. The structured
// editor models win when present; the pane with the most content is taken
// as the active one, which guards against multi-pane layouts reporting an
// empty scratch model first. DOM-level fallbacks follow in fixed order.
func codeFromSnapshot(doc *goquery.Document, snap Snapshot) models.CodeResult {
	result := models.CodeResult{Language: unknownLanguage}

	if pane, ok := largestEditorModel(snap.EditorModels); ok {
		result.UserCode = pane.Value
		if lang := strings.TrimSpace(pane.LanguageID); lang != "" {
			result.Language = lang
		}
	}

	if result.UserCode == "" {
		result.UserCode = domCode(doc)
	}

	if result.Language == unknownLanguage {
		if lang := probeLanguage(doc); lang != "" {
			result.Language = lang
		}
	}

	return result
}

func largestEditorModel(models []EditorModel) (EditorModel, bool) {
	best := EditorModel{}
	found := false
	for _, pane := range models {
		if strings.TrimSpace(pane.Value) == "" {
			continue
		}
		if !found || len(pane.Value) > len(best.Value) {
			best = pane
			found = true
		}
	}
	return best, found
}

func domCode(doc *goquery.Document) string {
	if text := doc.Find(".monaco-editor textarea").First().Text(); strings.TrimSpace(text) != "" {
		return text
	}

	if text := doc.Find(".CodeMirror textarea").First().Text(); strings.TrimSpace(text) != "" {
		return text
	}
	if code := joinedLines(doc, ".CodeMirror-line"); code != "" {
		return code
	}

	return joinedLines(doc, ".view-line")
}

// joinedLines reassembles visually rendered editor lines into source text.
func joinedLines(doc *goquery.Document, selector string) string {
	lines := doc.Find(selector)
	if lines.Length() == 0 {
		return ""
	}

	parts := make([]string, 0, lines.Length())
	lines.Each(func(_ int, sel *goquery.Selection) {
		parts = append(parts, sel.Text())
	})

	code := strings.Join(parts, "\n")
	if strings.TrimSpace(code) == "" {
		return ""
	}
	return code
}

func probeLanguage(doc *goquery.Document) string {
	for _, selector := range languageProbeSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			text, _ = sel.Attr("value")
			text = strings.TrimSpace(text)
		}
		if text != "" {
			return text
		}
	}
	return ""
}
