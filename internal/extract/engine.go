// Package extract turns a raw problem-page snapshot into a normalised
// problem model. Every field is resolved through an ordered list of
// candidate strategies and degrades to a documented default rather than
// failing the whole extraction; only a snapshot that cannot be read at all
// is a hard failure.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/herupa/herupa-go-api/internal/models"
)

// ErrPageUnreadable indicates no problem model could be assembled from the
// snapshot at all.
var ErrPageUnreadable = errors.New("page unreadable")

// Engine extracts problem models from page snapshots.
type Engine struct {
	logger zerolog.Logger
}

// NewEngine builds an extraction engine.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{
		logger: logger.With().Str("component", "extract_engine").Logger(),
	}
}

// DetectPlatform maps a page URL onto the supported platform families.
func DetectPlatform(url string) (models.Platform, bool) {
	switch {
	case strings.Contains(url, "leetcode.com/problems/"):
		return models.PlatformLeetCode, true
	case strings.Contains(url, "takeuforward.org/plus/dsa/problems/"):
		return models.PlatformTakeUForward, true
	default:
		return "", false
	}
}

// Extract assembles a full problem model from the snapshot.
func (e *Engine) Extract(snap Snapshot) (models.Problem, error) {
	platform, ok := DetectPlatform(snap.URL)
	if !ok {
		return models.Problem{}, fmt.Errorf("%w: unsupported page %q", ErrPageUnreadable, snap.URL)
	}

	doc, err := parseSnapshot(snap)
	if err != nil {
		return models.Problem{}, err
	}

	var problem models.Problem
	switch platform {
	case models.PlatformTakeUForward:
		problem = extractTakeUForward(doc)
	default:
		problem = extractLeetCode(doc)
	}

	problem = problem.WithCode(codeFromSnapshot(doc, snap))

	e.logger.Debug().
		Str("platform", string(platform)).
		Str("title", problem.Title).
		Str("difficulty", string(problem.Difficulty)).
		Int("examples", len(problem.Examples)).
		Int("tags", len(problem.Tags)).
		Bool("has_code", problem.HasCode()).
		Msg("problem extracted")

	return problem, nil
}

// ExtractCode re-runs only the code and language branch of extraction. It
// backs the "re-read my code" refresh, which merges the result into an
// existing problem without touching any other field.
func (e *Engine) ExtractCode(snap Snapshot) (models.CodeResult, error) {
	doc, err := parseSnapshot(snap)
	if err != nil {
		return models.CodeResult{}, err
	}
	return codeFromSnapshot(doc, snap), nil
}

func parseSnapshot(snap Snapshot) (*goquery.Document, error) {
	if strings.TrimSpace(snap.HTML) == "" {
		return nil, fmt.Errorf("%w: empty document", ErrPageUnreadable)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(snap.HTML))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageUnreadable, err)
	}
	return doc, nil
}
