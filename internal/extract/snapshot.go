package extract

// EditorModel is one structured editor pane the page-scripting host managed
// to read from the problem page. Pages with multi-pane layouts report one
// model per pane.
type EditorModel struct {
	Value      string
	LanguageID string
}

// Snapshot is the raw material the engine works on: the page URL, the
// rendered HTML of the document, and any editor models the host exposed.
// The host that produces it is an external collaborator; the engine never
// touches a live page.
type Snapshot struct {
	URL          string
	HTML         string
	EditorModels []EditorModel
}
