package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// Redis shares the runtime cache between server replicas. Values are the
// JSON form of domain.WordMeaning under prefix+key. Backend errors are logged
// and degrade to cache misses.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// RedisOptions configures NewRedis.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
	TTL      time.Duration
}

// NewRedis connects a client with opts. The connection is lazy; use Ping to
// verify reachability.
func NewRedis(opts RedisOptions, logger *slog.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return NewRedisWithClient(client, opts.Prefix, opts.TTL, logger)
}

// NewRedisWithClient wraps an existing client.
func NewRedisWithClient(client *redis.Client, prefix string, ttl time.Duration, logger *slog.Logger) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		log:    logger.With("adapter", "redis_cache"),
	}
}

// Get returns the cached meaning for key.
func (r *Redis) Get(ctx context.Context, key string) (*domain.WordMeaning, bool) {
	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		r.log.WarnContext(ctx, "cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}

	var m domain.WordMeaning
	if err := json.Unmarshal(data, &m); err != nil {
		r.log.WarnContext(ctx, "cache entry corrupt", slog.String("key", key), slog.String("error", err.Error()))
		return nil, false
	}
	return &m, true
}

// Set stores meaning under key with the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, meaning *domain.WordMeaning) {
	if key == "" || meaning == nil {
		return
	}
	data, err := json.Marshal(meaning)
	if err != nil {
		r.log.WarnContext(ctx, "cache encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := r.client.Set(ctx, r.prefix+key, data, r.ttl).Err(); err != nil {
		r.log.WarnContext(ctx, "cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

// Ping checks the connection.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client's connections.
func (r *Redis) Close() error {
	return r.client.Close()
}
