package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

log:
  level: "debug"
  format: "text"

corpus:
  poems_path: "/srv/nazm/poems.json"

dictionary:
  static_cache_path: "/srv/nazm/dictionary-cache.json"
  runtime_ttl: "30m"
  negative_ttl: "10m"
  runtime_cache_size: 500
  request_timeout: "5s"
  preferred_languages: "Urdu, Hindi"

providers:
  freedict_locale: "ur"
  suggestions: 3

cache:
  backend: "redis"
  redis_addr: "redis:6379"
  redis_db: 2

builder:
  delay: "250ms"
  progress_every: 10
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}

	// Corpus and dictionary
	if cfg.Corpus.PoemsPath != "/srv/nazm/poems.json" {
		t.Errorf("corpus.poems_path = %q", cfg.Corpus.PoemsPath)
	}
	if cfg.Dictionary.RuntimeTTL != 30*time.Minute {
		t.Errorf("dictionary.runtime_ttl = %v, want 30m", cfg.Dictionary.RuntimeTTL)
	}
	if cfg.Dictionary.NegativeTTL != 10*time.Minute {
		t.Errorf("dictionary.negative_ttl = %v, want 10m", cfg.Dictionary.NegativeTTL)
	}
	if got := cfg.Dictionary.Languages(); len(got) != 2 || got[0] != "Urdu" || got[1] != "Hindi" {
		t.Errorf("dictionary.Languages() = %q", got)
	}

	// Providers keep defaults for unset fields.
	if cfg.Providers.FreeDictLocale != "ur" {
		t.Errorf("providers.freedict_locale = %q, want ur", cfg.Providers.FreeDictLocale)
	}
	if cfg.Providers.InputMethod != "hi-t-i0-und" {
		t.Errorf("providers.input_method = %q, want default", cfg.Providers.InputMethod)
	}

	// Cache
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "redis:6379" || cfg.Cache.RedisDB != 2 {
		t.Errorf("cache = %+v", cfg.Cache)
	}

	// Builder
	if cfg.Builder.Delay != 250*time.Millisecond {
		t.Errorf("builder.delay = %v, want 250ms", cfg.Builder.Delay)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("FORCE_DICTIONARY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
	if !cfg.Builder.Force {
		t.Error("builder.force should follow FORCE_DICTIONARY")
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080 (default)", cfg.Server.Port)
	}
	if cfg.Dictionary.RuntimeTTL != time.Hour {
		t.Errorf("dictionary.runtime_ttl = %v, want 1h", cfg.Dictionary.RuntimeTTL)
	}
	if cfg.Dictionary.StaticCachePath != "./public/dictionary-cache.json" {
		t.Errorf("dictionary.static_cache_path = %q", cfg.Dictionary.StaticCachePath)
	}
	if cfg.Builder.Delay != 120*time.Millisecond || cfg.Builder.ProgressEvery != 25 {
		t.Errorf("builder = %+v", cfg.Builder)
	}
	if cfg.Cache.Backend != "memory" {
		t.Errorf("cache.backend = %q, want memory", cfg.Cache.Backend)
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)

	_, err := LoadPath(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log:       LogConfig{Level: "info", Format: "json", MaxSizeMB: 100},
		RateLimit: RateLimitConfig{LookupsPerMinute: 60, CleanupInterval: 5 * time.Minute},
		Corpus:    CorpusConfig{PoemsPath: "./data/poems.json"},
		Dictionary: DictionaryConfig{
			StaticCachePath:    "./public/dictionary-cache.json",
			RuntimeTTL:         time.Hour,
			NegativeTTL:        time.Hour,
			RuntimeCacheSize:   10000,
			RequestTimeout:     8 * time.Second,
			PreferredLanguages: "Hindi,Urdu",
		},
		Providers: ProvidersConfig{
			WiktionaryURL:  "https://en.wiktionary.org/api/rest_v1/page/definition",
			FreeDictURL:    "https://api.dictionaryapi.dev/api/v2/entries",
			FreeDictLocale: "hi",
			InputToolsURL:  "https://inputtools.google.com/request",
			InputMethod:    "hi-t-i0-und",
			Suggestions:    5,
		},
		Cache:   CacheConfig{Backend: "memory"},
		Builder: BuilderConfig{Delay: 120 * time.Millisecond, ProgressEvery: 25},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantSub string
	}{
		{"unknown cache backend", func(c *Config) { c.Cache.Backend = "memcached" }, "Cache.Backend"},
		{"redis without address", func(c *Config) { c.Cache.Backend = "redis"; c.Cache.RedisAddr = "" }, "Cache.RedisAddr"},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, "Log.Format"},
		{"zero suggestions", func(c *Config) { c.Providers.Suggestions = 0 }, "Providers.Suggestions"},
		{"bad wiktionary url", func(c *Config) { c.Providers.WiktionaryURL = "not a url" }, "Providers.WiktionaryURL"},
		{"empty poems path", func(c *Config) { c.Corpus.PoemsPath = "" }, "Corpus.PoemsPath"},
		{"zero cache size", func(c *Config) { c.Dictionary.RuntimeCacheSize = 0 }, "Dictionary.RuntimeCacheSize"},
		{"zero runtime ttl", func(c *Config) { c.Dictionary.RuntimeTTL = 0 }, "dictionary.runtime_ttl"},
		{"negative negative ttl", func(c *Config) { c.Dictionary.NegativeTTL = -time.Second }, "dictionary.negative_ttl"},
		{"zero request timeout", func(c *Config) { c.Dictionary.RequestTimeout = 0 }, "dictionary.request_timeout"},
		{"negative builder delay", func(c *Config) { c.Builder.Delay = -time.Millisecond }, "builder.delay"},
		{"no languages", func(c *Config) { c.Dictionary.PreferredLanguages = " , " }, "preferred_languages"},
		{"zero rate limit", func(c *Config) { c.RateLimit.LookupsPerMinute = 0 }, "RateLimit.LookupsPerMinute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestValidate_ZeroBuilderDelayAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Builder.Delay = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
