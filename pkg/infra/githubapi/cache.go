package githubapi

import (
	"sync"
	"time"
)

// responseCache is a small in-process cache for read-only API responses,
// keyed by request and bounded by a time-to-live. It only saves redundant
// calls within one command invocation; nothing survives the process.
type responseCache struct {
	mutex   sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value   any
	expires time.Time
}

func newResponseCache(ttl time.Duration) *responseCache {
	return &responseCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (x *responseCache) get(key string) (any, bool) {
	if x == nil || x.ttl <= 0 {
		return nil, false
	}
	x.mutex.Lock()
	defer x.mutex.Unlock()

	entry, ok := x.entries[key]
	if !ok || time.Now().After(entry.expires) {
		delete(x.entries, key)
		return nil, false
	}
	return entry.value, true
}

func (x *responseCache) set(key string, value any) {
	if x == nil || x.ttl <= 0 {
		return
	}
	x.mutex.Lock()
	defer x.mutex.Unlock()

	x.entries[key] = cacheEntry{
		value:   value,
		expires: time.Now().Add(x.ttl),
	}
}
