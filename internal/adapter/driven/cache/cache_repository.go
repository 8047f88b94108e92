// Package cache guarda as respostas da API do POS entre requisições do dashboard.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/diillson/pos-sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// NewCacheRepository cria o backend configurado.
func NewCacheRepository(cfg types.CacheConfig) (repository.CacheRepository, error) {
	switch cfg.Backend {
	case "", types.CacheBackendMemory:
		return NewMemoryCache(cfg.Size)
	case types.CacheBackendRedis:
		return NewRedisCache(cfg.RedisURL)
	case types.CacheBackendNone:
		return NopCache{}, nil
	}
	return nil, fmt.Errorf("unsupported cache backend %q", cfg.Backend)
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCache é um LRU em processo com expiração por chave.
type MemoryCache struct {
	mu    sync.Mutex
	items *lru.Cache[string, memoryEntry]
	now   func() time.Time
}

// NewMemoryCache cria um cache com no máximo size entradas.
func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = types.DefaultCacheSize
	}
	items, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, fmt.Errorf("error creating memory cache: %w", err)
	}
	return &MemoryCache{items: items, now: time.Now}, nil
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items.Get(key)
	if !ok {
		return nil, types.ErrCacheMiss
	}
	if !entry.expiresAt.IsZero() && !c.now().Before(entry.expiresAt) {
		c.items.Remove(key)
		return nil, types.ErrCacheMiss
	}
	return entry.data, nil
}

// Set armazena uma cópia de value; ttl <= 0 significa sem expiração.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry := memoryEntry{data: append([]byte(nil), value...)}
	if ttl > 0 {
		entry.expiresAt = c.now().Add(ttl)
	}
	c.items.Add(key, entry)
	return nil
}

func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, key := range keys {
		c.items.Remove(key)
	}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items.Len()
}

// NopCache desativa o cache: toda leitura é um miss.
type NopCache struct{}

func (NopCache) Get(context.Context, string) ([]byte, error) { return nil, types.ErrCacheMiss }

func (NopCache) Set(context.Context, string, []byte, time.Duration) error { return nil }

func (NopCache) Delete(context.Context, ...string) error { return nil }
