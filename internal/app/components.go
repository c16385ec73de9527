package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/nazm-backend/internal/adapter/cache"
	"github.com/heartmarshall/nazm-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/nazm-backend/internal/adapter/provider/inputtools"
	"github.com/heartmarshall/nazm-backend/internal/adapter/provider/manual"
	"github.com/heartmarshall/nazm-backend/internal/adapter/provider/wiktionary"
	"github.com/heartmarshall/nazm-backend/internal/adapter/staticcache"
	"github.com/heartmarshall/nazm-backend/internal/config"
	"github.com/heartmarshall/nazm-backend/internal/domain"
	"github.com/heartmarshall/nazm-backend/internal/glossary"
	"github.com/heartmarshall/nazm-backend/internal/provider"
	"github.com/heartmarshall/nazm-backend/internal/service/cachebuilder"
	"github.com/heartmarshall/nazm-backend/internal/service/meaning"
)

// RuntimeCache is a runtime meaning cache backend.
type RuntimeCache interface {
	Get(ctx context.Context, key string) (*domain.WordMeaning, bool)
	Set(ctx context.Context, key string, meaning *domain.WordMeaning)
	Ping(ctx context.Context) error
	Close() error
}

// NewRuntimeCache builds the backend selected by cache.backend.
func NewRuntimeCache(cfg *config.Config, logger *slog.Logger) (RuntimeCache, error) {
	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemory(cfg.Dictionary.RuntimeCacheSize, cfg.Dictionary.RuntimeTTL), nil
	case "redis":
		return cache.NewRedis(cache.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
			Prefix:   cfg.Cache.KeyPrefix,
			TTL:      cfg.Dictionary.RuntimeTTL,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// Providers holds the remote clients and the manual dictionary.
type Providers struct {
	Wiktionary *wiktionary.Provider
	FreeDict   *freedict.Provider
	InputTools *inputtools.Provider
	Manual     *manual.Dictionary
}

// NewProviders builds every provider from cfg.
func NewProviders(cfg *config.Config, logger *slog.Logger) *Providers {
	p := cfg.Providers
	return &Providers{
		Wiktionary: wiktionary.NewProvider(p.WiktionaryURL, cfg.Dictionary.Languages(), logger),
		FreeDict:   freedict.NewProvider(p.FreeDictURL, p.FreeDictLocale, logger),
		InputTools: inputtools.NewProvider(p.InputToolsURL, p.InputMethod, p.Suggestions, logger),
		Manual:     manual.Default(),
	}
}

// Runtime returns the lookup order used while serving: lexical reference,
// fallback dictionary, manual dictionary.
func (p *Providers) Runtime() []provider.Source {
	return []provider.Source{p.Wiktionary, p.FreeDict, p.Manual}
}

// Offline returns the lookup order used by the static cache builder.
func (p *Providers) Offline() []provider.Source {
	return []provider.Source{p.Wiktionary, p.FreeDict}
}

// LoadGlossary returns the table from glossary.path, or the built-in one.
func LoadGlossary(cfg *config.Config) (*glossary.Table, error) {
	if cfg.Glossary.Path == "" {
		return glossary.Default(), nil
	}
	return glossary.LoadFile(cfg.Glossary.Path)
}

// NewResolver builds the meaning resolver over the given caches.
func NewResolver(cfg *config.Config, logger *slog.Logger, runtime RuntimeCache, static *staticcache.Reader, p *Providers) *meaning.Service {
	return meaning.NewService(logger, runtime, static, p.InputTools, p.Runtime(), meaning.Options{
		NegativeTTL:    cfg.Dictionary.NegativeTTL,
		RequestTimeout: cfg.Dictionary.RequestTimeout,
	})
}

// NewBuilder builds the static cache builder.
func NewBuilder(cfg *config.Config, logger *slog.Logger, p *Providers) *cachebuilder.Builder {
	return cachebuilder.NewBuilder(logger, p.InputTools, p.Offline(), cachebuilder.Options{
		Delay:          cfg.Builder.Delay,
		ProgressEvery:  cfg.Builder.ProgressEvery,
		RequestTimeout: cfg.Dictionary.RequestTimeout,
	})
}
