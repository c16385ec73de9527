// Package freedict is the fallback dictionary source backed by
// dictionaryapi.dev, queried with a non-English locale.
package freedict

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/nazm-backend/internal/adapter/provider/httpclient"
	"github.com/heartmarshall/nazm-backend/internal/domain"
)

const (
	defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries"
	defaultLocale  = "hi"
)

// Provider fetches meanings from the FreeDictionary API.
type Provider struct {
	baseURL string
	locale  string
	client  *httpclient.Client
	log     *slog.Logger
}

// NewProvider creates a Provider. Empty baseURL or locale fall back to the
// public endpoint and Hindi.
func NewProvider(baseURL, locale string, logger *slog.Logger, opts ...httpclient.Option) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if locale == "" {
		locale = defaultLocale
	}
	log := logger.With("adapter", "freedict")
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		locale:  locale,
		client:  httpclient.New(log, opts...),
		log:     log,
	}
}

// Name returns the provenance label.
func (p *Provider) Name() string { return domain.SourceDictionaryAPI }

// Lookup fetches the first definition for word.
// Returns nil, nil if the word is not found (HTTP 404 or no definition).
func (p *Provider) Lookup(ctx context.Context, word string) (*domain.WordMeaning, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(p.locale) + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	var entries []apiEntry
	found, err := p.client.GetJSON(ctx, reqURL, word, &entries)
	if err != nil {
		return nil, fmt.Errorf("freedict: %w", err)
	}
	if !found {
		return nil, nil
	}

	result := mapAPIResponse(entries, word)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("entries", len(entries)),
		slog.Bool("found", result != nil),
	)

	return result, nil
}

// mapAPIResponse takes the first definition of the first meaning of the
// first entry. Returns nil when that definition is missing or blank.
func mapAPIResponse(entries []apiEntry, query string) *domain.WordMeaning {
	if len(entries) == 0 {
		return nil
	}
	entry := entries[0]
	if len(entry.Meanings) == 0 || len(entry.Meanings[0].Definitions) == 0 {
		return nil
	}
	meaning := entry.Meanings[0]
	def := meaning.Definitions[0]

	text := strings.TrimSpace(def.Definition)
	if text == "" {
		return nil
	}

	result := &domain.WordMeaning{
		Word:         strings.TrimSpace(entry.Word),
		Meaning:      text,
		Etymology:    strings.TrimSpace(entry.Origin),
		PartOfSpeech: strings.TrimSpace(meaning.PartOfSpeech),
		Source:       domain.SourceDictionaryAPI,
	}
	if result.Word == "" {
		result.Word = query
	}
	if ex := strings.TrimSpace(def.Example); ex != "" {
		result.Examples = []string{ex}
	}
	return result
}
