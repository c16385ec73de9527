// Package provider defines the contracts between the meaning services and
// the external lookup adapters.
package provider

import (
	"context"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// Source looks up the meaning of a single word.
// It returns nil, nil when the source answers definitively that it has no
// entry, and an error only when the source could not be consulted.
type Source interface {
	Name() string
	Lookup(ctx context.Context, word string) (*domain.WordMeaning, error)
}

// Transliterator expands a Roman-script word into ranked Devanagari spellings.
// An empty result with a nil error means the service had no suggestion.
type Transliterator interface {
	Candidates(ctx context.Context, roman string) ([]string, error)
}
