package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxEntries bounds a MemoryCache built with a non-positive size.
const DefaultMaxEntries = 1024

type entry struct {
	value   string
	expires time.Time
}

// MemoryCache is a process-local Cache holding at most size entries, least
// recently used first out. A zero ttl keeps entries until they are evicted.
type MemoryCache struct {
	entries *lru.Cache[string, entry]
	ttl     time.Duration
	clock   func() time.Time

	mu        sync.Mutex
	nextSweep time.Time
}

func NewMemoryCache(ttl time.Duration, size int) (*MemoryCache, error) {
	if size <= 0 {
		size = DefaultMaxEntries
	}
	entries, err := lru.New[string, entry](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create memory cache: %w", err)
	}
	return &MemoryCache{
		entries: entries,
		ttl:     ttl,
		clock:   time.Now,
	}, nil
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool) {
	e, ok := m.entries.Get(key)
	if !ok {
		return "", false
	}
	if m.expired(e, m.clock()) {
		m.entries.Remove(key)
		return "", false
	}
	return e.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value string) error {
	now := m.clock()
	e := entry{value: value}
	if m.ttl > 0 {
		e.expires = now.Add(m.ttl)
		m.sweep(now)
	}
	m.entries.Add(key, e)
	return nil
}

// sweep drops expired entries, at most once per ttl.
func (m *MemoryCache) sweep(now time.Time) {
	m.mu.Lock()
	if now.Before(m.nextSweep) {
		m.mu.Unlock()
		return
	}
	m.nextSweep = now.Add(m.ttl)
	m.mu.Unlock()

	for _, key := range m.entries.Keys() {
		if e, ok := m.entries.Peek(key); ok && m.expired(e, now) {
			m.entries.Remove(key)
		}
	}
}

func (m *MemoryCache) expired(e entry, now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

func (m *MemoryCache) Len() int {
	return m.entries.Len()
}
