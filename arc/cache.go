package arc

import "fmt"

// Cache is an Adaptive Replacement Cache over keys of type K and values of
// type V. It is not safe for concurrent use; callers needing concurrency
// must serialize their own calls or shard across multiple Cache instances
// (see the sibling shardedarc package).
type Cache[K comparable, V any] struct {
	ops Ops[K, V]

	c int64 // capacity target for resident items (T1 ∪ T2)
	p int64 // adaptive target size of T1, 0 <= p <= c

	t1, t2 list[K, V] // resident: recency, frequency
	b1, b2 list[K, V] // ghosts: recency, frequency

	// index covers T1, T2, B1, and B2 uniformly; ghost keys remain
	// indexed with a payload-less Object. Using Go's native comparable
	// map gives O(1) amortized lookup directly from K, so the core
	// does not itself call Ops.Hash/Ops.Cmp; they remain part of Ops as
	// host callbacks. shardedarc routes keys with its own Options.Hash
	// (util.Fnv64a by default), not with Ops.Hash.
	index map[K]*Object[K, V]
}

// NewCache allocates a cache with capacity target c. c must be strictly
// positive. The initial target p is c/2.
func NewCache[K comparable, V any](ops Ops[K, V], c int64) (*Cache[K, V], error) {
	if ops == nil {
		return nil, fmt.Errorf("arc: NewCache: nil Ops")
	}
	if c <= 0 {
		return nil, fmt.Errorf("arc: NewCache: capacity must be > 0, got %d", c)
	}
	return &Cache[K, V]{
		ops:   ops,
		c:     c,
		p:     c / 2,
		index: make(map[K]*Object[K, V]),
	}, nil
}

// Cap returns the configured capacity target c.
func (c *Cache[K, V]) Cap() int64 { return c.c }

// Target returns the current adaptive target size p of T1.
func (c *Cache[K, V]) Target() int64 { return c.p }

// Sizes reports the current weight of all four lists, useful for metrics
// and invariant checks.
func (c *Cache[K, V]) Sizes() (t1, t2, b1, b2 int64) {
	return c.t1.size, c.t2.size, c.b1.size, c.b2.size
}

// Len returns the number of indexed records across all four lists
// (resident + ghost), in record count rather than weight.
func (c *Cache[K, V]) Len() int { return len(c.index) }

// Membership classifies where key currently sits, without affecting it.
// Hosts use this to classify a Lookup outcome for metrics purposes
// (distinguishing a resident hit from a ghost hit) without duplicating
// the core's index.
type Membership int

const (
	NotPresent Membership = iota
	Resident              // T1 or T2: a live, fetched payload
	GhostRecency           // B1: evicted from the recency list
	GhostFrequency         // B2: evicted from the frequency list
)

// MembershipOf reports key's current Membership. It does not mutate the
// cache or count as a Lookup.
func (c *Cache[K, V]) MembershipOf(key K) Membership {
	obj, ok := c.index[key]
	if !ok {
		return NotPresent
	}
	switch obj.state {
	case stateT1, stateT2:
		return Resident
	case stateB1:
		return GhostRecency
	case stateB2:
		return GhostFrequency
	default:
		return NotPresent
	}
}

// Close destroys every resident and ghost record, invoking Evict first
// for any record with a live payload (T1/T2), then Destroy for all of
// them. Each list's records are collected into a slice before any
// callback runs on them, deliberately avoiding the hazard of iterating a
// list while mutating it.
// After Close returns, the Cache must not be used again.
func (c *Cache[K, V]) Close() {
	for _, obj := range c.t1.drain() {
		c.ops.Evict(obj)
		delete(c.index, obj.key)
		c.ops.Destroy(obj)
	}
	for _, obj := range c.t2.drain() {
		c.ops.Evict(obj)
		delete(c.index, obj.key)
		c.ops.Destroy(obj)
	}
	for _, obj := range c.b1.drain() {
		delete(c.index, obj.key)
		c.ops.Destroy(obj)
	}
	for _, obj := range c.b2.drain() {
		delete(c.index, obj.key)
		c.ops.Destroy(obj)
	}
}

// listFor returns the list backing a given state tag, or nil for
// stateNone (which has no backing list).
func (c *Cache[K, V]) listFor(s state) *list[K, V] {
	switch s {
	case stateT1:
		return &c.t1
	case stateT2:
		return &c.t2
	case stateB1:
		return &c.b1
	case stateB2:
		return &c.b2
	default:
		return nil
	}
}
