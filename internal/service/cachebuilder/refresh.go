package cachebuilder

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/nazm-backend/internal/adapter/staticcache"
)

// RefreshResult reports what Refresh decided and, when it rebuilt, the build
// statistics.
type RefreshResult struct {
	Freshness staticcache.Freshness
	Rebuilt   bool
	Build     Result
}

// Refresh regenerates the cache when forced, when the cache file is missing
// or when the corpus changed after the cache was written. A missing corpus
// skips the refresh.
func (b *Builder) Refresh(ctx context.Context, corpusPath, cachePath string, force bool) (RefreshResult, error) {
	f := staticcache.CheckFreshness(corpusPath, cachePath)
	out := RefreshResult{Freshness: f}

	switch {
	case force:
		b.log.Info("forced regeneration", slog.String("status", string(f.Status)))
	case f.Status == staticcache.StatusCorpusMissing:
		b.log.Info("corpus missing, skipping refresh", slog.String("path", corpusPath))
		return out, nil
	case !f.NeedsRebuild():
		b.log.Info("static cache is up to date, skipping regeneration", slog.String("path", cachePath))
		return out, nil
	default:
		b.log.Info("static cache needs regeneration", slog.String("reason", f.Describe()))
	}

	res, err := b.Generate(ctx, corpusPath, cachePath)
	out.Rebuilt = err == nil || res.Resolved > 0
	out.Build = res
	return out, err
}
