// Package inputtools is the Roman to Devanagari transliteration source backed
// by the Google Input Tools endpoint.
package inputtools

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/nazm-backend/internal/adapter/provider/httpclient"
	"github.com/heartmarshall/nazm-backend/internal/domain"
)

const (
	defaultBaseURL     = "https://inputtools.google.com/request"
	defaultInputMethod = "hi-t-i0-und"
	defaultSuggestions = 5

	// MemoSize bounds the per-input suggestion memo.
	MemoSize = 50_000

	statusSuccess = "SUCCESS"
)

// Provider expands Roman words into ranked Devanagari spellings.
// Answers, including empty ones, are memoized per lowercase input for the
// lifetime of the Provider. Transport failures are not memoized.
type Provider struct {
	baseURL     string
	inputMethod string
	num         int
	client      *httpclient.Client
	memo        *lru.Cache[string, []string]
	log         *slog.Logger
}

// NewProvider creates a Provider. Zero values fall back to the public
// endpoint, the Hindi input method and five suggestions.
func NewProvider(baseURL, inputMethod string, num int, logger *slog.Logger, opts ...httpclient.Option) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if inputMethod == "" {
		inputMethod = defaultInputMethod
	}
	if num <= 0 {
		num = defaultSuggestions
	}
	memo, _ := lru.New[string, []string](MemoSize)
	log := logger.With("adapter", "inputtools")
	return &Provider{
		baseURL:     baseURL,
		inputMethod: inputMethod,
		num:         num,
		client:      httpclient.New(log, opts...),
		memo:        memo,
		log:         log,
	}
}

// Candidates returns Devanagari suggestions for roman, best first.
func (p *Provider) Candidates(ctx context.Context, roman string) ([]string, error) {
	key := strings.ToLower(strings.TrimSpace(roman))
	if key == "" {
		return nil, nil
	}

	if cached, ok := p.memo.Get(key); ok {
		return clone(cached), nil
	}

	suggestions, err := p.fetch(ctx, key)
	if err != nil {
		return nil, err
	}

	p.memo.Add(key, suggestions)
	return clone(suggestions), nil
}

func (p *Provider) fetch(ctx context.Context, text string) ([]string, error) {
	params := url.Values{}
	params.Set("text", text)
	params.Set("itc", p.inputMethod)
	params.Set("num", strconv.Itoa(p.num))
	reqURL := p.baseURL + "?" + params.Encode()

	var payload []json.RawMessage
	found, err := p.client.GetJSON(ctx, reqURL, text, &payload)
	if err != nil {
		return nil, fmt.Errorf("inputtools: %w", err)
	}
	if !found {
		return nil, nil
	}

	suggestions, err := parseSuggestions(payload)
	if err != nil {
		return nil, fmt.Errorf("inputtools: %w: %w", domain.ErrSourceUnavailable, err)
	}

	p.log.DebugContext(ctx, "inputtools response",
		slog.String("word", text),
		slog.Int("suggestions", len(suggestions)),
	)
	return suggestions, nil
}

// parseSuggestions reads ["SUCCESS", [[input, [suggestion, ...], ...]]].
// A non-success status is a definitive empty answer.
func parseSuggestions(payload []json.RawMessage) ([]string, error) {
	if len(payload) == 0 {
		return nil, fmt.Errorf("empty payload")
	}

	var status string
	if err := json.Unmarshal(payload[0], &status); err != nil {
		return nil, fmt.Errorf("decode status: %w", err)
	}
	if status != statusSuccess || len(payload) < 2 {
		return nil, nil
	}

	var results [][]json.RawMessage
	if err := json.Unmarshal(payload[1], &results); err != nil {
		return nil, fmt.Errorf("decode results: %w", err)
	}
	if len(results) == 0 || len(results[0]) < 2 {
		return nil, nil
	}

	var raw []any
	if err := json.Unmarshal(results[0][1], &raw); err != nil {
		return nil, nil
	}

	var out []string
	for _, s := range raw {
		str, ok := s.(string)
		if !ok {
			continue
		}
		if str = strings.TrimSpace(str); str != "" {
			out = append(out, str)
		}
	}
	return out, nil
}

func clone(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
