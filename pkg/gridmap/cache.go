package gridmap

import (
	"container/list"
)

// snapshotCache memoizes recompute results with LRU eviction. Recompute is a
// pure function of its inputs, so cache entries never go stale as long as the
// key captures every input revision.
//
// The cache is an optimization only: the engine behaves identically with a
// zero-capacity cache.
type snapshotCache struct {
	capacity int
	entries  map[string]*cacheEntry
	lru      *list.List // most recently used at front

	hits   int
	misses int
}

type cacheEntry struct {
	key      string
	snapshot Snapshot
	element  *list.Element
}

func newSnapshotCache(capacity int) *snapshotCache {
	return &snapshotCache{
		capacity: capacity,
		entries:  make(map[string]*cacheEntry),
		lru:      list.New(),
	}
}

// get returns a memoized snapshot and marks it recently used.
func (c *snapshotCache) get(key string) (Snapshot, bool) {
	if c.capacity <= 0 {
		return Snapshot{}, false
	}
	entry, ok := c.entries[key]
	if !ok {
		c.misses++
		return Snapshot{}, false
	}
	c.hits++
	c.lru.MoveToFront(entry.element)
	return entry.snapshot, true
}

// add stores a snapshot, evicting the least recently used entry at capacity.
func (c *snapshotCache) add(key string, snap Snapshot) {
	if c.capacity <= 0 {
		return
	}
	if entry, ok := c.entries[key]; ok {
		entry.snapshot = snap
		c.lru.MoveToFront(entry.element)
		return
	}

	for c.lru.Len() >= c.capacity {
		oldest := c.lru.Back()
		if oldest == nil {
			break
		}
		evicted := oldest.Value.(*cacheEntry)
		c.lru.Remove(oldest)
		delete(c.entries, evicted.key)
	}

	entry := &cacheEntry{key: key, snapshot: snap}
	entry.element = c.lru.PushFront(entry)
	c.entries[key] = entry
}

// stats reports hit/miss counts since creation.
func (c *snapshotCache) stats() (hits, misses int) {
	return c.hits, c.misses
}
