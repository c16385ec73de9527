// Package cache holds the runtime meaning cache backends.
package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/nazm-backend/internal/domain"
)

// Memory is a process-local, size-bounded cache with a fixed TTL per entry.
// Values are cloned on the way in and out so callers cannot mutate cached data.
type Memory struct {
	lru *expirable.LRU[string, *domain.WordMeaning]
}

// NewMemory creates a Memory cache holding at most size entries for ttl each.
func NewMemory(size int, ttl time.Duration) *Memory {
	return &Memory{lru: expirable.NewLRU[string, *domain.WordMeaning](size, nil, ttl)}
}

// Get returns a fresh entry for key.
func (m *Memory) Get(_ context.Context, key string) (*domain.WordMeaning, bool) {
	v, ok := m.lru.Get(key)
	if !ok {
		return nil, false
	}
	return v.Clone(), true
}

// Set stores meaning under key, restarting its TTL.
func (m *Memory) Set(_ context.Context, key string, meaning *domain.WordMeaning) {
	if key == "" || meaning == nil {
		return
	}
	m.lru.Add(key, meaning.Clone())
}

// Len returns the number of live entries.
func (m *Memory) Len() int { return m.lru.Len() }

// Ping always succeeds; it exists so both backends satisfy the health checker.
func (m *Memory) Ping(context.Context) error { return nil }

// Close is a no-op.
func (m *Memory) Close() error { return nil }
