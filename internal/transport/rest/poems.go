package rest

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/heartmarshall/nazm-backend/internal/annotate"
	"github.com/heartmarshall/nazm-backend/internal/domain"
)

type poemStore interface {
	Poems() []domain.Poem
	Poem(id int) (domain.Poem, error)
}

// PoemsHandler serves the poem corpus with rendered fragments.
type PoemsHandler struct {
	poems     poemStore
	annotator *annotate.Annotator
}

// NewPoemsHandler serves poems from poems, annotated line by line.
func NewPoemsHandler(poems poemStore, annotator *annotate.Annotator) *PoemsHandler {
	return &PoemsHandler{poems: poems, annotator: annotator}
}

// PoemSummary is one item of GET /api/poems.
type PoemSummary struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	RomanizedTitle string   `json:"romanizedTitle,omitempty"`
	Date           string   `json:"date,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// PoemView is the body of GET /api/poems/{id}.
type PoemView struct {
	PoemSummary
	Script domain.Script `json:"script"`
	Lines  []LineView    `json:"lines"`
}

// LineView is one rendered line.
type LineView struct {
	Text      string              `json:"text"`
	Fragments []annotate.Fragment `json:"fragments"`
}

func summary(p domain.Poem) PoemSummary {
	return PoemSummary{
		ID:             p.ID,
		Title:          p.Title,
		RomanizedTitle: p.RomanizedTitle,
		Date:           p.Date,
		Tags:           p.Tags,
	}
}

// List returns every poem without its lines.
func (h *PoemsHandler) List(w http.ResponseWriter, r *http.Request) {
	poems := h.poems.Poems()
	out := make([]PoemSummary, 0, len(poems))
	for _, p := range poems {
		out = append(out, summary(p))
	}
	writeData(w, out)
}

// Get returns one poem with every line rendered for the requested script.
// Poems without a romanized variant fall back to their Devanagari lines.
func (h *PoemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeValidationError(w, domain.NewValidationError("id", "must be an integer"))
		return
	}

	script, err := domain.ParseScript(r.URL.Query().Get("script"))
	if err != nil {
		writeValidationError(w, err)
		return
	}

	p, err := h.poems.Poem(id)
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, "poem not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	lines := p.DisplayLines(script)
	view := PoemView{
		PoemSummary: summary(p),
		Script:      script,
		Lines:       make([]LineView, len(lines)),
	}
	for i, fragments := range h.annotator.AnnotateLines(lines, script) {
		view.Lines[i] = LineView{Text: lines[i], Fragments: fragments}
	}
	writeData(w, view)
}
