package config

import (
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Corpus     CorpusConfig     `yaml:"corpus"`
	Glossary   GlossaryConfig   `yaml:"glossary"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Providers  ProvidersConfig  `yaml:"providers"`
	Cache      CacheConfig      `yaml:"cache"`
	Builder    BuilderConfig    `yaml:"builder"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400" validate:"gte=0"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// TrustForwardedFor keys rate limiting on the first X-Forwarded-For hop.
	// Enable only behind a reverse proxy that sets the header.
	TrustForwardedFor bool `yaml:"trust_forwarded_for" env:"SERVER_TRUST_FORWARDED_FOR" env-default:"false"`
}

// LogConfig holds logging settings. When File is set, output goes to a
// rotating file instead of stderr.
type LogConfig struct {
	Level      string `yaml:"level"        env:"LOG_LEVEL"        env-default:"info"`
	Format     string `yaml:"format"       env:"LOG_FORMAT"       env-default:"json" validate:"oneof=json text JSON TEXT"`
	File       string `yaml:"file"         env:"LOG_FILE"`
	MaxSizeMB  int    `yaml:"max_size_mb"  env:"LOG_MAX_SIZE_MB"  env-default:"100" validate:"min=1"`
	MaxBackups int    `yaml:"max_backups"  env:"LOG_MAX_BACKUPS"  env-default:"3"   validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" env:"LOG_MAX_AGE_DAYS" env-default:"28"  validate:"gte=0"`
}

// RateLimitConfig bounds per-IP meaning lookups.
type RateLimitConfig struct {
	LookupsPerMinute int           `yaml:"lookups_per_minute" env:"RATE_LIMIT_LOOKUPS_PER_MINUTE" env-default:"60" validate:"min=1"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}

// CorpusConfig locates the poem corpus file.
type CorpusConfig struct {
	PoemsPath string `yaml:"poems_path" env:"CORPUS_POEMS_PATH" env-default:"./data/poems.json" validate:"required"`
}

// GlossaryConfig optionally replaces the built-in glossary with a JSON file.
type GlossaryConfig struct {
	Path string `yaml:"path" env:"GLOSSARY_PATH"`
}

// DictionaryConfig holds meaning resolution settings.
type DictionaryConfig struct {
	StaticCachePath    string        `yaml:"static_cache_path"   env:"DICT_STATIC_CACHE_PATH"   env-default:"./public/dictionary-cache.json" validate:"required"`
	RuntimeTTL         time.Duration `yaml:"runtime_ttl"         env:"DICT_RUNTIME_TTL"         env-default:"1h"`
	NegativeTTL        time.Duration `yaml:"negative_ttl"        env:"DICT_NEGATIVE_TTL"        env-default:"1h"`
	RuntimeCacheSize   int           `yaml:"runtime_cache_size"  env:"DICT_RUNTIME_CACHE_SIZE"  env-default:"10000" validate:"min=1"`
	RequestTimeout     time.Duration `yaml:"request_timeout"     env:"DICT_REQUEST_TIMEOUT"     env-default:"8s"`
	PreferredLanguages string        `yaml:"preferred_languages" env:"DICT_PREFERRED_LANGUAGES" env-default:"Hindi,Urdu"`
}

// Languages returns PreferredLanguages split on commas, blanks dropped.
func (c DictionaryConfig) Languages() []string {
	var out []string
	for _, l := range strings.Split(c.PreferredLanguages, ",") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// ProvidersConfig holds external API endpoints.
type ProvidersConfig struct {
	WiktionaryURL  string `yaml:"wiktionary_url"  env:"PROVIDER_WIKTIONARY_URL"  env-default:"https://en.wiktionary.org/api/rest_v1/page/definition" validate:"required,url"`
	FreeDictURL    string `yaml:"freedict_url"    env:"PROVIDER_FREEDICT_URL"    env-default:"https://api.dictionaryapi.dev/api/v2/entries"       validate:"required,url"`
	FreeDictLocale string `yaml:"freedict_locale" env:"PROVIDER_FREEDICT_LOCALE" env-default:"hi"                                                 validate:"required"`
	InputToolsURL  string `yaml:"inputtools_url"  env:"PROVIDER_INPUTTOOLS_URL"  env-default:"https://inputtools.google.com/request"              validate:"required,url"`
	InputMethod    string `yaml:"input_method"    env:"PROVIDER_INPUT_METHOD"    env-default:"hi-t-i0-und"                                        validate:"required"`
	Suggestions    int    `yaml:"suggestions"     env:"PROVIDER_SUGGESTIONS"     env-default:"5"                                                  validate:"min=1,max=10"`
}

// CacheConfig selects the runtime cache backend.
type CacheConfig struct {
	Backend       string `yaml:"backend"        env:"CACHE_BACKEND"        env-default:"memory" validate:"oneof=memory redis"`
	RedisAddr     string `yaml:"redis_addr"     env:"CACHE_REDIS_ADDR"     env-default:"localhost:6379" validate:"required_if=Backend redis"`
	RedisPassword string `yaml:"redis_password" env:"CACHE_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"       env:"CACHE_REDIS_DB"       env-default:"0" validate:"gte=0"`
	KeyPrefix     string `yaml:"key_prefix"     env:"CACHE_KEY_PREFIX"     env-default:"nazm:meaning:"`
}

// BuilderConfig holds offline static cache builder settings.
type BuilderConfig struct {
	Delay         time.Duration `yaml:"delay"          env:"BUILDER_DELAY"          env-default:"120ms"`
	ProgressEvery int           `yaml:"progress_every" env:"BUILDER_PROGRESS_EVERY" env-default:"25" validate:"min=1"`
	Force         bool          `yaml:"force"          env:"FORCE_DICTIONARY"       env-default:"false"`
}
