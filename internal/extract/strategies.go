package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// strategy is one independent way of obtaining a text value from the page.
// Each field is resolved by an ordered list of strategies; the first one
// returning non-empty text wins and the rest are never evaluated.
type strategy struct {
	name string
	fn   func(doc *goquery.Document) string
}

func selectorStrategy(name, selector string) strategy {
	return strategy{
		name: name,
		fn: func(doc *goquery.Document) string {
			sel := doc.Find(selector).First()
			if sel.Length() == 0 {
				return ""
			}
			return blockText(sel)
		},
	}
}

// resolve evaluates strategies in order and returns the first non-empty
// result together with the name of the strategy that produced it.
func resolve(doc *goquery.Document, strategies []strategy) (string, string) {
	for _, s := range strategies {
		if text := strings.TrimSpace(s.fn(doc)); text != "" {
			return text, s.name
		}
	}
	return "", ""
}

var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "li": {}, "ul": {}, "ol": {}, "pre": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"tr": {}, "table": {}, "section": {}, "article": {}, "blockquote": {},
	"header": {}, "footer": {},
}

var skipTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {},
}

var excessBlankRe = regexp.MustCompile(`\n{3,}`)

// blockText renders a selection to plain text the way a browser's innerText
// would: block-level elements and <br> produce line breaks, scripts and
// styles contribute nothing.
func blockText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		renderText(node, &b)
	}
	return tidyText(b.String())
}

func renderText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if _, skip := skipTags[n.Data]; skip {
			return
		}
		if n.Data == "br" {
			b.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(c, b)
	}

	if n.Type == html.ElementNode {
		if _, block := blockTags[n.Data]; block {
			b.WriteString("\n")
		}
	}
}

func tidyText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = excessBlankRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// pageTitle reads the document's own <title>, stripping any of the given
// suffix patterns. It is the last-resort title strategy on both platforms.
func pageTitle(doc *goquery.Document, strip *regexp.Regexp) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return ""
	}
	if strip != nil {
		title = strip.ReplaceAllString(title, "")
	}
	return strings.TrimSpace(title)
}
