package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/nazm-backend/internal/annotate"
	"github.com/heartmarshall/nazm-backend/internal/domain"
)

type meaningResolver interface {
	Resolve(ctx context.Context, word string) (*domain.WordMeaning, error)
}

// MeaningHandler serves GET /api/meaning/{word}.
type MeaningHandler struct {
	resolver meaningResolver
	log      *slog.Logger
}

// NewMeaningHandler creates a MeaningHandler backed by resolver.
func NewMeaningHandler(resolver meaningResolver, logger *slog.Logger) *MeaningHandler {
	return &MeaningHandler{resolver: resolver, log: logger.With("handler", "meaning")}
}

func (h *MeaningHandler) Get(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	m, err := h.resolver.Resolve(r.Context(), word)
	switch {
	case err == nil:
		writeData(w, m)
	case errors.Is(err, domain.ErrInvalidWord):
		writeError(w, http.StatusBadRequest, annotate.MessageInvalidWord)
	case errors.Is(err, domain.ErrMeaningNotFound):
		writeError(w, http.StatusNotFound, annotate.MessageNotAvailable)
	default:
		h.log.WarnContext(r.Context(), "resolve failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusBadGateway, annotate.MessageFetchFailed)
	}
}
