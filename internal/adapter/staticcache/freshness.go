package staticcache

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Status classifies the cache file against the poem corpus.
type Status string

const (
	StatusCorpusMissing Status = "corpus-missing"
	StatusCacheMissing  Status = "cache-missing"
	StatusStale         Status = "stale"
	StatusFresh         Status = "fresh"
)

// Freshness is the outcome of CheckFreshness.
type Freshness struct {
	Status       Status
	CorpusMod    time.Time
	CacheMod     time.Time
	CacheSize    int64
	CorpusLeadBy time.Duration // corpus mtime minus cache mtime when stale
}

// NeedsRebuild reports whether the cache should be regenerated.
// A missing corpus never triggers a rebuild.
func (f Freshness) NeedsRebuild() bool {
	return f.Status == StatusCacheMissing || f.Status == StatusStale
}

// Describe renders a one-line, human-readable report.
func (f Freshness) Describe() string {
	switch f.Status {
	case StatusCorpusMissing:
		return "poem corpus missing; nothing to compare"
	case StatusCacheMissing:
		return "no dictionary cache found; run the cache builder to prime definitions"
	case StatusStale:
		lead := strings.TrimSpace(humanize.RelTime(f.CacheMod, f.CorpusMod, "", ""))
		return fmt.Sprintf("poems were updated %s after the dictionary cache; run the cache builder to refresh meanings", lead)
	default:
		return fmt.Sprintf("dictionary cache is up to date (%s, written %s)",
			humanize.Bytes(uint64(f.CacheSize)), humanize.Time(f.CacheMod))
	}
}

// CheckFreshness compares modification times. The cache is stale only when
// the corpus is strictly newer.
func CheckFreshness(corpusPath, cachePath string) Freshness {
	corpus, err := os.Stat(corpusPath)
	if err != nil {
		return Freshness{Status: StatusCorpusMissing}
	}
	f := Freshness{CorpusMod: corpus.ModTime()}

	cache, err := os.Stat(cachePath)
	if err != nil {
		f.Status = StatusCacheMissing
		return f
	}
	f.CacheMod = cache.ModTime()
	f.CacheSize = cache.Size()

	if f.CorpusMod.After(f.CacheMod) {
		f.Status = StatusStale
		f.CorpusLeadBy = f.CorpusMod.Sub(f.CacheMod)
		return f
	}
	f.Status = StatusFresh
	return f
}
