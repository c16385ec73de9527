package rest

import (
	"net/http"

	"github.com/heartmarshall/nazm-backend/internal/annotate"
	"github.com/heartmarshall/nazm-backend/internal/domain"
)

type annotateQuery struct {
	Line   string `query:"line"   validate:"omitempty,max=4096"`
	Script string `query:"script" validate:"omitempty,oneof=devanagari roman"`
}

// AnnotateHandler serves GET /api/annotate.
type AnnotateHandler struct {
	annotator *annotate.Annotator
}

// NewAnnotateHandler creates an AnnotateHandler.
func NewAnnotateHandler(annotator *annotate.Annotator) *AnnotateHandler {
	return &AnnotateHandler{annotator: annotator}
}

type annotateResponse struct {
	Fragments []annotate.Fragment `json:"fragments"`
}

// Get renders one line into fragments. script defaults to devanagari; an
// empty line renders as the blank-line placeholder.
func (h *AnnotateHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := annotateQuery{
		Line:   r.URL.Query().Get("line"),
		Script: r.URL.Query().Get("script"),
	}
	if err := validateQuery(q); err != nil {
		writeValidationError(w, err)
		return
	}

	script := domain.ScriptDevanagari
	if q.Script != "" {
		script = domain.Script(q.Script)
	}

	writeJSON(w, http.StatusOK, annotateResponse{
		Fragments: h.annotator.Annotate(q.Line, script),
	})
}
