// Package cache holds computed similarity scores keyed by a fingerprint of
// (algorithm, key configuration, both inputs). Entries expire on a TTL and
// the table is bounded: eviction first sweeps expired entries, then drops
// the oldest insertions until the table is at half capacity.
package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/standardbeagle/textsim/internal/debug"
)

// Defaults for the engine result cache.
const (
	DefaultMaxEntries = 10000
	DefaultTTL        = 5 * time.Minute

	// estimatedEntryOverhead approximates map bookkeeping plus the entry
	// struct for memory reporting.
	estimatedEntryOverhead = 96
)

type entry struct {
	fingerprint []byte
	value       float64
	insertedAt  time.Time
}

// Cache is a bounded TTL map from fingerprint to similarity value. One
// exclusive lock guards probes, writes, and evictions.
type Cache struct {
	mu         sync.Mutex
	entries    map[uint64]entry
	maxEntries int
	ttl        time.Duration

	hits    int64
	misses  int64
	evicted int64

	// now is swappable for tests.
	now func() time.Time
}

// New returns a cache with the given bounds; zero values select the
// defaults.
func New(maxEntries int, ttl time.Duration) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		entries:    make(map[uint64]entry),
		maxEntries: maxEntries,
		ttl:        ttl,
		now:        time.Now,
	}
}

// Key hashes a fingerprint to the cache's key form.
func Key(fingerprint []byte) uint64 {
	return xxhash.Sum64(fingerprint)
}

// Get probes the cache. A hit within the TTL returns the stored value; an
// expired entry is removed on the spot. The fingerprint is compared in
// full, so hash collisions read as misses.
func (c *Cache) Get(fingerprint []byte) (float64, bool) {
	key := Key(fingerprint)

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || !bytesEqual(e.fingerprint, fingerprint) {
		c.misses++
		return 0, false
	}
	if c.now().Sub(e.insertedAt) >= c.ttl {
		delete(c.entries, key)
		c.misses++
		return 0, false
	}
	c.hits++
	return e.value, true
}

// Put stores a similarity value, evicting first when the table is full.
func (c *Cache) Put(fingerprint []byte, value float64) {
	key := Key(fingerprint)
	fp := make([]byte, len(fingerprint))
	copy(fp, fingerprint)

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictLocked()
	}

	c.entries[key] = entry{fingerprint: fp, value: value, insertedAt: c.now()}
}

// evictLocked sweeps expired entries, then removes oldest-by-insertion
// entries until the table is at half capacity.
func (c *Cache) evictLocked() {
	now := c.now()
	for key, e := range c.entries {
		if now.Sub(e.insertedAt) >= c.ttl {
			delete(c.entries, key)
			c.evicted++
		}
	}

	if len(c.entries) < c.maxEntries {
		return
	}

	type aged struct {
		key        uint64
		insertedAt time.Time
	}
	byAge := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		byAge = append(byAge, aged{key: key, insertedAt: e.insertedAt})
	}
	sort.Slice(byAge, func(i, j int) bool {
		return byAge[i].insertedAt.Before(byAge[j].insertedAt)
	})

	target := c.maxEntries / 2
	toRemove := len(c.entries) - target
	for i := 0; i < toRemove && i < len(byAge); i++ {
		delete(c.entries, byAge[i].key)
		c.evicted++
	}

	debug.Logf("cache: evicted to %d entries", len(c.entries))
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[uint64]entry)
}

// Len is the current entry count.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// MemoryUsage estimates the cache's resident bytes.
func (c *Cache) MemoryUsage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, e := range c.entries {
		total += len(e.fingerprint) + estimatedEntryOverhead
	}
	return total
}

// Stats reports hit/miss/eviction counters since creation.
func (c *Cache) Stats() (hits, misses, evicted int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses, c.evicted
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
