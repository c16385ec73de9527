package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/nazm-backend/internal/adapter/staticcache"
	"github.com/heartmarshall/nazm-backend/internal/annotate"
	"github.com/heartmarshall/nazm-backend/internal/app"
	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// BuildCmd resolves every corpus word missing from the static cache.
type BuildCmd struct{}

func (c *BuildCmd) Run(e *env) error {
	fmt.Fprintln(e.stdout, "Generating static dictionary cache...")

	b := app.NewBuilder(e.cfg, e.log, app.NewProviders(e.cfg, e.log))
	res, err := b.Generate(e.ctx, e.cfg.Corpus.PoemsPath, e.cfg.Dictionary.StaticCachePath)
	if err != nil && res.Resolved == 0 {
		return fmt.Errorf("failed to generate dictionary cache: %w", err)
	}

	fmt.Fprintf(e.stdout, "Saved %d entries to %s (%d new, %d unresolved)\n",
		res.Total, e.cfg.Dictionary.StaticCachePath, res.Resolved, res.Failed)
	return err
}

// CheckCmd reports whether the static cache is older than the corpus. It
// never fails on a stale cache; it prints a reminder instead.
type CheckCmd struct{}

func (c *CheckCmd) Run(e *env) error {
	f := staticcache.CheckFreshness(e.cfg.Corpus.PoemsPath, e.cfg.Dictionary.StaticCachePath)
	fmt.Fprintf(e.stdout, "[dictionary] %s\n", f.Describe())
	if f.NeedsRebuild() {
		fmt.Fprintln(e.stdout, "[dictionary] run `dictcache build` or `dictcache refresh`")
	}
	return nil
}

// RefreshCmd rebuilds the cache when forced, missing or stale.
type RefreshCmd struct {
	Force bool `help:"Regenerate even when the cache is up to date" env:"FORCE_DICTIONARY"`
}

func (c *RefreshCmd) Run(e *env) error {
	force := c.Force || e.cfg.Builder.Force

	b := app.NewBuilder(e.cfg, e.log, app.NewProviders(e.cfg, e.log))
	out, err := b.Refresh(e.ctx, e.cfg.Corpus.PoemsPath, e.cfg.Dictionary.StaticCachePath, force)

	switch {
	case out.Rebuilt:
		fmt.Fprintf(e.stdout, "[dictionary] saved %d entries to %s\n", out.Build.Total, e.cfg.Dictionary.StaticCachePath)
	case out.Freshness.Status == staticcache.StatusCorpusMissing:
		fmt.Fprintln(e.stdout, "[dictionary] poems file missing; skipping refresh")
	case err == nil:
		fmt.Fprintln(e.stdout, "[dictionary] cache is up to date; skipping regeneration")
	}
	return err
}

// LookupCmd resolves one word through the runtime pipeline.
type LookupCmd struct {
	Word string `arg:"" help:"Word in Devanagari or Roman script"`
}

func (c *LookupCmd) Run(e *env) error {
	runtime, err := app.NewRuntimeCache(e.cfg, e.log)
	if err != nil {
		return err
	}
	defer runtime.Close()

	static := staticcache.NewReader(e.cfg.Dictionary.StaticCachePath, e.log)
	resolver := app.NewResolver(e.cfg, e.log, runtime, static, app.NewProviders(e.cfg, e.log))

	m, err := resolver.Resolve(e.ctx, c.Word)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidWord) || errors.Is(err, domain.ErrMeaningNotFound) {
			return fmt.Errorf("%s: %s", c.Word, annotate.FailureMessage(err))
		}
		return err
	}

	printMeaning(e, m)
	return nil
}

// AnnotateCmd renders a line into fragments. With --resolve every lookup
// fragment is opened like a reader tapping it.
type AnnotateCmd struct {
	Line    string `arg:"" help:"Poem line"`
	Script  string `help:"Script of the line" enum:"devanagari,roman" default:"devanagari"`
	Resolve bool   `help:"Resolve the meaning of every lookup fragment"`
}

func (c *AnnotateCmd) Run(e *env) error {
	table, err := app.LoadGlossary(e.cfg)
	if err != nil {
		return err
	}
	fragments := annotate.NewAnnotator(table).Annotate(c.Line, domain.Script(c.Script))

	var tooltips map[int]*annotate.Tooltip
	if c.Resolve {
		tooltips, err = c.openTooltips(e, fragments)
		if err != nil {
			return err
		}
	}

	for i, f := range fragments {
		switch f.Kind {
		case annotate.KindTranslation:
			fmt.Fprintf(e.stdout, "[%s] %q = %s\n", f.Kind, f.Text, f.Meaning)
		case annotate.KindLookup:
			line := fmt.Sprintf("[%s] %q", f.Kind, f.Text)
			if t, ok := tooltips[i]; ok {
				v := t.View()
				if v.State == annotate.StateResolved {
					line += fmt.Sprintf(" = %s (%s)", v.Meaning.Meaning, v.Meaning.Source)
				} else {
					line += " : " + v.Message
				}
			}
			fmt.Fprintln(e.stdout, line)
		default:
			if strings.TrimSpace(f.Text) != "" {
				fmt.Fprintf(e.stdout, "[%s] %q\n", f.Kind, f.Text)
			}
		}
	}
	return nil
}

// openTooltips opens one tooltip per lookup fragment and waits for all of
// them. Lookups of the same word share one resolution.
func (c *AnnotateCmd) openTooltips(e *env, fragments []annotate.Fragment) (map[int]*annotate.Tooltip, error) {
	runtime, err := app.NewRuntimeCache(e.cfg, e.log)
	if err != nil {
		return nil, err
	}
	defer runtime.Close()

	static := staticcache.NewReader(e.cfg.Dictionary.StaticCachePath, e.log)
	resolver := app.NewResolver(e.cfg, e.log, runtime, static, app.NewProviders(e.cfg, e.log))

	tooltips := make(map[int]*annotate.Tooltip)
	var pending []<-chan struct{}
	for i, f := range fragments {
		if f.Kind != annotate.KindLookup {
			continue
		}
		t := annotate.NewTooltip(f.Text, resolver)
		tooltips[i] = t
		pending = append(pending, t.Open(e.ctx))
	}

	for _, done := range pending {
		if err := wait(e.ctx, done); err != nil {
			return nil, err
		}
	}
	return tooltips, nil
}

func wait(ctx context.Context, done <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func printMeaning(e *env, m *domain.WordMeaning) {
	fmt.Fprintf(e.stdout, "%s: %s\n", m.Word, m.Meaning)
	if m.PartOfSpeech != "" {
		fmt.Fprintf(e.stdout, "  part of speech: %s\n", m.PartOfSpeech)
	}
	if m.Etymology != "" {
		fmt.Fprintf(e.stdout, "  etymology: %s\n", m.Etymology)
	}
	for _, ex := range m.Examples {
		fmt.Fprintf(e.stdout, "  example: %s\n", ex)
	}
	fmt.Fprintf(e.stdout, "  source: %s\n", m.Source)
}

// VersionCmd prints build information.
type VersionCmd struct{}

func (c *VersionCmd) Run(e *env) error {
	fmt.Fprintf(e.stdout, "dictcache %s\n", app.BuildVersion())
	return nil
}
