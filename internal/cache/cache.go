// Package cache wraps a process-wide TTL cache used to memoize store
// snapshots between user interactions.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Well-known snapshot keys. The cache is effectively keyed by nothing more
// than these: one entry per snapshot kind.
const (
	KeyArticles = "articles"
	KeyTags     = "tags"
)

type Manager struct {
	cache *gocache.Cache
}

func NewManager(defaultTTL time.Duration) *Manager {
	return &Manager{
		cache: gocache.New(defaultTTL, 10*time.Minute),
	}
}

func (m *Manager) Get(key string) (interface{}, bool) {
	return m.cache.Get(key)
}

func (m *Manager) Set(key string, value interface{}, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}

func (m *Manager) Delete(key string) {
	m.cache.Delete(key)
}

func (m *Manager) Flush() {
	m.cache.Flush()
}
