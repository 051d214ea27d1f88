package layout

import (
	"runtime"
	"sync"
	"weak"
)

// measureSlots is how many constraint sets are remembered per node.
const measureSlots = 8

type measureEntry struct {
	c    Constraints
	size Size
}

type cacheEntry struct {
	measures [measureSlots]measureEntry
	used     int
	next     int
	computed int

	rect     Rect
	c        Constraints
	geometry *Geometry
}

// CacheStats are running totals since the cache was created.
type CacheStats struct {
	Entries       int
	Hits          uint64 // measurements answered from the cache
	Misses        uint64 // measurements computed
	ArrangeHits   uint64 // subtrees whose geometry was reused
	ArrangeMisses uint64
}

// Cache memoizes measurements and arrangements per node identity.
//
// Keys are weak pointers, so the cache never keeps a node alive. When a
// node is collected its key is queued by a runtime cleanup and the entry is
// dropped by the next Sweep; Measure and Layout sweep on entry. A Cache is
// not safe for concurrent use. The zero value is ready to use and a nil
// *Cache disables caching.
type Cache struct {
	entries map[weak.Pointer[Node]]*cacheEntry
	stats   CacheStats

	mu   sync.Mutex // guards dead, which cleanups append to
	dead []weak.Pointer[Node]
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[weak.Pointer[Node]]*cacheEntry)}
}

func (c *Cache) entry(n *Node, create bool) *cacheEntry {
	key := weak.Make(n)
	e := c.entries[key]
	if e == nil && create {
		if c.entries == nil {
			c.entries = make(map[weak.Pointer[Node]]*cacheEntry)
		}
		e = &cacheEntry{}
		c.entries[key] = e
		runtime.AddCleanup(n, c.collected, key)
	}
	return e
}

// collected runs on the cleanup goroutine.
func (c *Cache) collected(key weak.Pointer[Node]) {
	c.mu.Lock()
	c.dead = append(c.dead, key)
	c.mu.Unlock()
}

// Sweep drops the entries of collected nodes and returns how many were
// dropped.
func (c *Cache) Sweep() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	dead := c.dead
	c.dead = nil
	c.mu.Unlock()

	dropped := 0
	for _, key := range dead {
		if _, ok := c.entries[key]; ok {
			delete(c.entries, key)
			dropped++
		}
	}
	return dropped
}

func (c *Cache) measured(n *Node, cons Constraints) (Size, bool) {
	if c == nil {
		return Size{}, false
	}
	if e := c.entry(n, false); e != nil {
		for i := range e.used {
			if e.measures[i].c == cons {
				c.stats.Hits++
				return e.measures[i].size, true
			}
		}
	}
	c.stats.Misses++
	return Size{}, false
}

func (c *Cache) storeMeasure(n *Node, cons Constraints, size Size) {
	if c == nil {
		return
	}
	e := c.entry(n, true)
	e.measures[e.next] = measureEntry{c: cons, size: size}
	e.next = (e.next + 1) % measureSlots
	e.used = min(e.used+1, measureSlots)
	e.computed++
}

func (c *Cache) arranged(n *Node, r Rect, cons Constraints) *Geometry {
	if c == nil {
		return nil
	}
	if e := c.entry(n, false); e != nil && e.geometry != nil && e.rect == r && e.c == cons {
		c.stats.ArrangeHits++
		return e.geometry
	}
	c.stats.ArrangeMisses++
	return nil
}

func (c *Cache) storeArrange(n *Node, r Rect, cons Constraints, g *Geometry) {
	if c == nil {
		return
	}
	e := c.entry(n, true)
	e.rect, e.c, e.geometry = r, cons, g
}

// Computations returns how many times n has been measured rather than
// answered from the cache.
func (c *Cache) Computations(n *Node) int {
	if c == nil {
		return 0
	}
	if e := c.entry(n, false); e != nil {
		return e.computed
	}
	return 0
}

// Invalidate forgets everything cached for n. Callers that mutate a node in
// place must invalidate it and every ancestor.
func (c *Cache) Invalidate(n *Node) {
	if c == nil || n == nil {
		return
	}
	delete(c.entries, weak.Make(n))
}

// Reset forgets every entry and zeroes the statistics.
func (c *Cache) Reset() {
	if c == nil {
		return
	}
	clear(c.entries)
	c.stats = CacheStats{}
}

// Len returns the number of nodes with cache entries.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Stats returns the running totals.
func (c *Cache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	s := c.stats
	s.Entries = len(c.entries)
	return s
}
