// Package wiktionary is the lexical-reference source backed by the
// Wiktionary REST definition endpoint.
package wiktionary

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/heartmarshall/nazm-backend/internal/adapter/provider/httpclient"
	"github.com/heartmarshall/nazm-backend/internal/domain"
)

const defaultBaseURL = "https://en.wiktionary.org/api/rest_v1/page/definition"

// Provider resolves meanings from Wiktionary, following inflection pointers
// ("plural of X", "oblique of X") to the lemma.
type Provider struct {
	baseURL   string
	preferred map[string]struct{}
	client    *httpclient.Client
	log       *slog.Logger
}

// NewProvider creates a Provider. Entries whose language is in preferred
// win over the first entry of the payload.
func NewProvider(baseURL string, preferred []string, logger *slog.Logger, opts ...httpclient.Option) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	set := make(map[string]struct{}, len(preferred))
	for _, l := range preferred {
		set[l] = struct{}{}
	}
	log := logger.With("adapter", "wiktionary")
	return &Provider{
		baseURL:   strings.TrimRight(baseURL, "/"),
		preferred: set,
		client:    httpclient.New(log, opts...),
		log:       log,
	}
}

// Name returns the provenance label.
func (p *Provider) Name() string { return domain.SourceWiktionary }

// Lookup returns the first usable definition for word, or nil, nil when
// Wiktionary has none.
func (p *Provider) Lookup(ctx context.Context, word string) (*domain.WordMeaning, error) {
	return p.lookup(ctx, word, make(map[string]struct{}))
}

func (p *Provider) lookup(ctx context.Context, word string, visited map[string]struct{}) (*domain.WordMeaning, error) {
	if _, seen := visited[word]; seen {
		return nil, nil
	}
	visited[word] = struct{}{}

	entries, err := p.fetch(ctx, word)
	if err != nil || len(entries) == 0 {
		return nil, err
	}

	entry := p.pick(entries)
	def, ok := firstDefinition(entry.Definitions)
	if !ok {
		return nil, nil
	}

	text := sanitize(def.Definition)
	if text == "" {
		text = strings.TrimSpace(def.Definition)
	}

	if target := inflectionTarget(def.Definition); target != "" && target != word {
		lemma, err := p.lookup(ctx, target, visited)
		if err != nil {
			p.log.WarnContext(ctx, "inflection target lookup failed",
				slog.String("word", word),
				slog.String("target", target),
				slog.String("error", err.Error()),
			)
		}
		if lemma != nil {
			merged := lemma.Clone()
			merged.Word = word
			merged.Examples = append(merged.Examples, "Inflection: "+text)
			merged.Source = domain.SourceWiktionary
			return merged, nil
		}
	}

	result := &domain.WordMeaning{
		Word:         strings.TrimSpace(html.UnescapeString(entry.Word)),
		Meaning:      text,
		Etymology:    sanitize(entry.Etymology),
		PartOfSpeech: sanitize(entry.PartOfSpeech),
		Source:       domain.SourceWiktionary,
	}
	if result.Word == "" {
		result.Word = word
	}
	for _, ex := range def.Examples {
		if s := sanitize(ex); s != "" {
			result.Examples = append(result.Examples, s)
		}
	}
	return result, nil
}

func (p *Provider) fetch(ctx context.Context, word string) ([]apiEntry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "wiktionary request", slog.String("word", word))

	var raw json.RawMessage
	found, err := p.client.GetJSON(ctx, reqURL, word, &raw)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: %w", err)
	}
	if !found {
		return nil, nil
	}

	entries, err := decodeEntries(raw)
	if err != nil {
		return nil, fmt.Errorf("wiktionary: decode entries: %w: %w", domain.ErrSourceUnavailable, err)
	}

	p.log.DebugContext(ctx, "wiktionary response",
		slog.String("word", word),
		slog.Int("entries", len(entries)),
	)
	return entries, nil
}

// pick prefers the first entry in a preferred language, else the first entry.
func (p *Provider) pick(entries []apiEntry) apiEntry {
	for _, e := range entries {
		if _, ok := p.preferred[e.Language]; ok {
			return e
		}
	}
	return entries[0]
}

func firstDefinition(defs []apiDefinition) (apiDefinition, bool) {
	for _, d := range defs {
		if strings.TrimSpace(d.Definition) != "" {
			return d, true
		}
	}
	return apiDefinition{}, false
}
