package dto

import (
	"github.com/herupa/herupa-go-api/internal/extract"
	"github.com/herupa/herupa-go-api/internal/models"
)

// EditorModelRequest is one structured editor pane reported by the
// page-scripting host.
type EditorModelRequest struct {
	Value      string `json:"value"`
	LanguageID string `json:"language_id"`
}

// PageSnapshotRequest carries the raw page material the host captured.
type PageSnapshotRequest struct {
	URL          string               `json:"url" validate:"required"`
	HTML         string               `json:"html" validate:"required"`
	EditorModels []EditorModelRequest `json:"editor_models"`
}

// Snapshot converts the request payload into the extraction engine's input.
func (r PageSnapshotRequest) Snapshot() extract.Snapshot {
	panes := make([]extract.EditorModel, 0, len(r.EditorModels))
	for _, pane := range r.EditorModels {
		panes = append(panes, extract.EditorModel{Value: pane.Value, LanguageID: pane.LanguageID})
	}
	return extract.Snapshot{URL: r.URL, HTML: r.HTML, EditorModels: panes}
}

// StartSessionRequest begins a tutoring session from a page snapshot.
type StartSessionRequest struct {
	Snapshot PageSnapshotRequest `json:"snapshot" validate:"required"`
}

// SendMessageRequest is one student turn.
type SendMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

// RereadRequest refreshes the student's code from a fresh snapshot.
type RereadRequest struct {
	Snapshot PageSnapshotRequest `json:"snapshot" validate:"required"`
}

// RevealSegmentsResponse is a mentor reply split around the pseudocode
// sentinels. Present only on the reveal turn when the markers parsed.
type RevealSegmentsResponse struct {
	Before     string `json:"before"`
	Pseudocode string `json:"pseudocode"`
	After      string `json:"after"`
}

// TurnResponse is one rendered transcript entry.
type TurnResponse struct {
	Role     string                  `json:"role"`
	Content  string                  `json:"content"`
	Segments *RevealSegmentsResponse `json:"segments,omitempty"`
}

// AttemptDot is one slot of the attempt indicator.
type AttemptDot struct {
	Used   bool `json:"used"`
	Pseudo bool `json:"pseudo"`
}

// ProblemResponse summarises the extracted problem for the context bar.
type ProblemResponse struct {
	Platform    string   `json:"platform"`
	Title       string   `json:"title"`
	Difficulty  string   `json:"difficulty"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	Constraints string   `json:"constraints"`
	Tags        []string `json:"tags"`
	Language    string   `json:"language"`
	HasCode     bool     `json:"has_code"`
}

// NewProblemResponse builds a problem DTO from the model.
func NewProblemResponse(problem models.Problem) ProblemResponse {
	return ProblemResponse{
		Platform:    string(problem.Platform),
		Title:       problem.Title,
		Difficulty:  string(problem.Difficulty),
		Description: problem.Description,
		Examples:    problem.Examples,
		Constraints: problem.Constraints,
		Tags:        problem.Tags,
		Language:    problem.Language,
		HasCode:     problem.HasCode(),
	}
}

// SessionResponse is the full session view the presentation layer renders.
type SessionResponse struct {
	ID          string          `json:"id"`
	State       string          `json:"state"`
	Problem     ProblemResponse `json:"problem"`
	Turns       []TurnResponse  `json:"turns"`
	Attempts    int             `json:"attempts"`
	PseudoGiven bool            `json:"pseudo_given"`
	Dots        []AttemptDot    `json:"dots"`
}
