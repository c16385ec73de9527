// Package meaning resolves a word to a meaning through the runtime cache,
// the static build-time cache and the ordered lookup sources.
package meaning

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/nazm-backend/internal/corpus"
	"github.com/heartmarshall/nazm-backend/internal/domain"
	"github.com/heartmarshall/nazm-backend/internal/provider"
)

type runtimeCache interface {
	Get(ctx context.Context, key string) (*domain.WordMeaning, bool)
	Set(ctx context.Context, key string, meaning *domain.WordMeaning)
}

type staticCache interface {
	Lookup(key string) (*domain.WordMeaning, bool)
}

// Options tune the resolver.
type Options struct {
	// NegativeTTL bounds how long a definitive miss is remembered.
	// Zero disables negative caching.
	NegativeTTL time.Duration
	// NegativeSize bounds the number of remembered misses.
	NegativeSize int
	// RequestTimeout bounds each call to a transliterator or source.
	RequestTimeout time.Duration
}

const (
	defaultNegativeSize   = 10_000
	defaultRequestTimeout = 8 * time.Second
)

// Service implements meaning resolution.
//
// Order: runtime cache, static cache, then for each candidate spelling the
// static cache again and every source in the given order. The first hit wins
// and is written to the runtime cache under both the query key and the
// candidate key.
type Service struct {
	log      *slog.Logger
	runtime  runtimeCache
	static   staticCache
	translit provider.Transliterator
	sources  []provider.Source
	negative *expirable.LRU[string, struct{}]
	timeout  time.Duration
	group    singleflight.Group
}

// NewService creates a meaning Service. translit and static may be nil.
func NewService(
	logger *slog.Logger,
	runtime runtimeCache,
	static staticCache,
	translit provider.Transliterator,
	sources []provider.Source,
	opts Options,
) *Service {
	if opts.NegativeSize <= 0 {
		opts.NegativeSize = defaultNegativeSize
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	s := &Service{
		log:      logger.With("service", "meaning"),
		runtime:  runtime,
		static:   static,
		translit: translit,
		sources:  sources,
		timeout:  opts.RequestTimeout,
	}
	if opts.NegativeTTL > 0 {
		s.negative = expirable.NewLRU[string, struct{}](opts.NegativeSize, nil, opts.NegativeTTL)
	}
	return s
}

// Resolve returns the meaning of word.
//
// Errors: domain.ErrInvalidWord when the word normalizes to nothing (no
// source is contacted), domain.ErrMeaningNotFound when every candidate missed
// every source, or the context error if ctx ends first. Failures of a single
// source are logged and never returned.
func (s *Service) Resolve(ctx context.Context, word string) (*domain.WordMeaning, error) {
	key := domain.NormalizeKey(word)
	if key == "" {
		return nil, domain.ErrInvalidWord
	}

	if m, ok := s.runtime.Get(ctx, key); ok {
		return m, nil
	}

	if m, ok := s.lookupStatic(key); ok {
		s.runtime.Set(ctx, key, m)
		return m, nil
	}

	if s.negative != nil && s.negative.Contains(key) {
		return nil, domain.ErrMeaningNotFound
	}

	// Concurrent resolutions of one key share a single remote walk. The walk
	// runs detached from any one caller so a caller leaving early does not
	// fail the others.
	ch := s.group.DoChan(key, func() (any, error) {
		return s.resolveRemote(context.WithoutCancel(ctx), word, key)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.WordMeaning).Clone(), nil
	}
}

func (s *Service) resolveRemote(ctx context.Context, word, key string) (*domain.WordMeaning, error) {
	if m, ok := s.runtime.Get(ctx, key); ok {
		return m, nil
	}

	candidates, definitive := s.candidates(ctx, word, key)

	for _, cand := range candidates {
		candKey := domain.NormalizeKey(cand)

		if m, ok := s.lookupStatic(candKey); ok {
			s.store(ctx, key, candKey, m)
			return m, nil
		}

		for _, src := range s.sources {
			m, err := s.lookupSource(ctx, src, cand)
			if err != nil {
				definitive = false
				continue
			}
			if m == nil {
				continue
			}

			s.log.DebugContext(ctx, "meaning resolved",
				slog.String("word", word),
				slog.String("candidate", cand),
				slog.String("source", src.Name()),
			)
			s.store(ctx, key, candKey, m)
			return m, nil
		}
	}

	if definitive && s.negative != nil {
		s.negative.Add(key, struct{}{})
	}
	s.log.DebugContext(ctx, "meaning not found",
		slog.String("word", word),
		slog.Int("candidates", len(candidates)),
		slog.Bool("definitive", definitive),
	)
	return nil, domain.ErrMeaningNotFound
}

// candidates returns the spellings to try, in order. definitive is false when
// transliteration failed, so the miss that follows must not be remembered.
//
// Roman input is recognized and transliterated from key, so every input
// sharing a key gets the same candidates as the negative cache entry and the
// coalesced walk stored under that key.
func (s *Service) candidates(ctx context.Context, word, key string) ([]string, bool) {
	trimmed := strings.TrimSpace(word)

	if corpus.IsRoman(key) {
		var out []string
		definitive := true
		if s.translit != nil {
			tctx, cancel := context.WithTimeout(ctx, s.timeout)
			suggestions, err := s.translit.Candidates(tctx, key)
			cancel()
			if err != nil {
				definitive = false
				s.log.WarnContext(ctx, "transliteration failed",
					slog.String("word", key),
					slog.String("error", err.Error()),
				)
			}
			out = suggestions
		}
		return dedupe(append(out, key)), definitive
	}

	return dedupe([]string{trimmed, domain.StripPunctuation(trimmed), key}), true
}

func (s *Service) lookupSource(ctx context.Context, src provider.Source, word string) (*domain.WordMeaning, error) {
	sctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	m, err := src.Lookup(sctx, word)
	if err != nil {
		s.log.WarnContext(ctx, "source lookup failed",
			slog.String("source", src.Name()),
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	if m == nil || strings.TrimSpace(m.Meaning) == "" {
		return nil, nil
	}
	return m, nil
}

func (s *Service) lookupStatic(key string) (*domain.WordMeaning, bool) {
	if s.static == nil || key == "" {
		return nil, false
	}
	return s.static.Lookup(key)
}

func (s *Service) store(ctx context.Context, key, candKey string, m *domain.WordMeaning) {
	s.runtime.Set(ctx, key, m)
	if candKey != "" && candKey != key {
		s.runtime.Set(ctx, candKey, m)
	}
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
