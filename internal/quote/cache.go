package quote

import (
	"sync"
	"time"
)

// entry is one cached fetch outcome. A nil snapshot records an unavailable
// result: failed lookups are cached for the same window as successes so a
// bad ticker does not hammer the provider on every render.
type entry struct {
	snapshot  *Snapshot
	fetchedAt time.Time
}

// Cache is a time-boxed, per-ticker memoization of quote fetch results.
// Entries expire after a fixed TTL; there is no size bound because the key
// space is the user's own ticker list.
//
// The cache is safe for concurrent use. It is injected into the Fetcher as
// a dependency so tests can substitute the clock and inspect state.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry

	// now is the clock used for expiry checks, replaceable in tests.
	now func() time.Time
}

// NewCache creates a cache whose entries expire after ttl.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached snapshot for a ticker, if present and fresh.
// The second return value reports whether a fresh entry was found; the
// snapshot itself may still be nil for a cached unavailable result.
func (c *Cache) Get(ticker string) (*Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[ticker]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.ttl {
		delete(c.entries, ticker)
		return nil, false
	}
	return e.snapshot, true
}

// Put stores a fetch outcome for a ticker. A nil snapshot records an
// unavailable result.
func (c *Cache) Put(ticker string, s *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[ticker] = entry{snapshot: s, fetchedAt: c.now()}
}

// Invalidate drops all cached entries. Called on explicit user refresh and
// after any create, update or delete of a position.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of cached entries, fresh or expired.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
