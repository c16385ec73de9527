// Package cachebuilder generates the static meaning cache from the poem corpus.
package cachebuilder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/nazm-backend/internal/adapter/staticcache"
	"github.com/heartmarshall/nazm-backend/internal/corpus"
	"github.com/heartmarshall/nazm-backend/internal/domain"
	"github.com/heartmarshall/nazm-backend/internal/provider"
)

// Options tune a build.
type Options struct {
	// Delay is the pause after every lookup. Lookups never run in parallel.
	Delay time.Duration
	// ProgressEvery logs progress after this many lookups.
	ProgressEvery int
	// RequestTimeout bounds each transliteration or source call.
	RequestTimeout time.Duration
}

// Result holds build statistics.
type Result struct {
	Existing int // entries already in the cache file
	Planned  int // lookups planned for words not yet cached
	Resolved int
	Failed   int
	Total    int // entries written
}

// Builder resolves corpus words that are missing from the static cache.
type Builder struct {
	log      *slog.Logger
	translit provider.Transliterator
	sources  []provider.Source
	opts     Options
}

// NewBuilder creates a Builder. Sources are tried in order for each word.
func NewBuilder(logger *slog.Logger, translit provider.Transliterator, sources []provider.Source, opts Options) *Builder {
	if opts.ProgressEvery <= 0 {
		opts.ProgressEvery = 25
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 8 * time.Second
	}
	return &Builder{
		log:      logger.With("service", "cachebuilder"),
		translit: translit,
		sources:  sources,
		opts:     opts,
	}
}

// task is one planned lookup.
type task struct {
	key    string
	word   string
	origin string // "devanagari" or "roman:<token>"
}

// Generate loads the corpus and the existing cache, resolves every missing
// word and writes the merged cache back to cachePath. On cancellation the
// entries resolved so far are still written before the context error is
// returned, so a rerun resumes where this one stopped.
func (b *Builder) Generate(ctx context.Context, corpusPath, cachePath string) (Result, error) {
	c, err := corpus.Load(corpusPath)
	if err != nil {
		return Result{}, err
	}

	entries := staticcache.ReadFile(cachePath, b.log)
	result, buildErr := b.Build(ctx, c, entries)

	if buildErr != nil && result.Resolved == 0 {
		return result, buildErr
	}
	if err := staticcache.WriteFile(cachePath, entries); err != nil {
		return result, fmt.Errorf("write cache: %w", err)
	}

	b.log.Info("static cache saved",
		slog.String("path", cachePath),
		slog.Int("entries", result.Total),
		slog.Int("resolved", result.Resolved),
		slog.Int("failed", result.Failed),
	)
	return result, buildErr
}

// Build resolves the corpus words missing from entries and adds them.
// Existing entries are never replaced.
func (b *Builder) Build(ctx context.Context, c *corpus.Corpus, entries staticcache.Entries) (Result, error) {
	result := Result{Existing: len(entries)}

	devanagari, roman := c.Words()
	b.log.Info("corpus words collected",
		slog.Int("devanagari", len(devanagari)),
		slog.Int("roman", len(roman)),
		slog.Int("cached", len(entries)),
	)

	tasks, err := b.plan(ctx, devanagari, roman, entries)
	if err != nil {
		result.Total = len(entries)
		return result, err
	}
	result.Planned = len(tasks)

	for i, t := range tasks {
		if m := b.resolve(ctx, t.word); m != nil {
			if _, exists := entries[t.key]; !exists {
				entries[t.key] = m
				result.Resolved++
			}
		} else {
			result.Failed++
		}

		done := i + 1
		if done%b.opts.ProgressEvery == 0 || done == len(tasks) {
			b.log.Info("progress",
				slog.Int("processed", done),
				slog.Int("total", len(tasks)),
				slog.String("origin", t.origin),
			)
		}

		if err := sleep(ctx, b.opts.Delay); err != nil {
			result.Total = len(entries)
			return result, err
		}
	}

	result.Total = len(entries)
	return result, nil
}

// plan lists the words to look up: Devanagari tokens directly, Roman tokens
// through their transliterations. Words whose key is already cached or
// already planned are skipped.
func (b *Builder) plan(ctx context.Context, devanagari, roman []string, entries staticcache.Entries) ([]task, error) {
	planned := make(map[string]struct{})
	var tasks []task

	add := func(word, origin string) {
		key := domain.NormalizeKey(word)
		if key == "" {
			return
		}
		if _, cached := entries[key]; cached {
			return
		}
		if _, dup := planned[key]; dup {
			return
		}
		planned[key] = struct{}{}
		tasks = append(tasks, task{key: key, word: word, origin: origin})
	}

	for _, w := range devanagari {
		add(w, "devanagari")
	}

	if b.translit == nil {
		return tasks, nil
	}
	for _, w := range roman {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tctx, cancel := context.WithTimeout(ctx, b.opts.RequestTimeout)
		candidates, err := b.translit.Candidates(tctx, strings.ToLower(w))
		cancel()
		if err != nil {
			b.log.Warn("transliteration failed", slog.String("word", w), slog.String("error", err.Error()))
			continue
		}
		for _, cand := range candidates {
			add(cand, "roman:"+w)
		}
	}
	return tasks, nil
}

// resolve tries every source in order. Source failures are logged and
// count as a miss for that source.
func (b *Builder) resolve(ctx context.Context, word string) *domain.WordMeaning {
	for _, src := range b.sources {
		sctx, cancel := context.WithTimeout(ctx, b.opts.RequestTimeout)
		m, err := src.Lookup(sctx, word)
		cancel()
		if err != nil {
			b.log.Warn("lookup failed",
				slog.String("source", src.Name()),
				slog.String("word", word),
				slog.String("error", err.Error()),
			)
			continue
		}
		if m != nil && strings.TrimSpace(m.Meaning) != "" {
			return m
		}
	}
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
