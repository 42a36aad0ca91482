package shardedarc

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/nmegiddo/arc/arc"
	"github.com/nmegiddo/arc/internal/util"
)

// Cache is a sharded Adaptive Replacement Cache: N independent arc.Cache
// instances, each holding capacity/N of the total weight and each tuning
// its own adaptive target p independently. It is safe for concurrent use
// by multiple goroutines.
type Cache[K comparable, V any] struct {
	shards []*shard[K, V]
	hash   func(K) uint64
	opt    Options[K, V]
	closed atomic.Bool
}

// New constructs a sharded cache with the given host Ops and total
// capacity target, split evenly (ceil) across shards.
func New[K comparable, V any](ops arc.Ops[K, V], capacity int64, opt Options[K, V]) (*Cache[K, V], error) {
	if ops == nil {
		return nil, fmt.Errorf("shardedarc: New: nil Ops")
	}
	if capacity <= 0 {
		return nil, fmt.Errorf("shardedarc: New: capacity must be > 0, got %d", capacity)
	}

	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.Hash == nil {
		opt.Hash = util.Fnv64a[K]
	}

	n := opt.Shards
	if n <= 0 {
		n = util.ReasonableShardCount()
	} else {
		n = int(util.NextPow2(uint64(n)))
	}

	perShardCap := (capacity + int64(n) - 1) / int64(n) // ceil
	if perShardCap < 1 {
		perShardCap = 1
	}

	shards := make([]*shard[K, V], n)
	for i := range shards {
		s, err := newShard[K, V](ops, opt.Metrics, perShardCap)
		if err != nil {
			return nil, fmt.Errorf("shardedarc: New: shard %d: %w", i, err)
		}
		shards[i] = s
	}

	return &Cache[K, V]{
		shards: shards,
		hash:   opt.Hash,
		opt:    opt,
	}, nil
}

// Lookup routes key to its shard and runs the core Lookup under that
// shard's lock, recording Hit/Miss/GhostHit and the shard's post-call
// sizes and adaptive target via Options.Metrics.
//
// A recovered invalid-state panic from arc.Cache.Lookup is logged with
// the shard index before being re-raised: shardedarc adds observability
// here, it does not change the core's fail-loud contract.
func (c *Cache[K, V]) Lookup(key K) (obj *arc.Object[K, V], err error) {
	if c.closed.Load() {
		return nil, fmt.Errorf("shardedarc: Lookup: cache is closed")
	}

	idx := c.shardIndex(key)
	s := c.shards[idx]

	s.mu.Lock()
	defer s.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			c.opt.Logger.Error("arc: invalid state during Lookup",
				zap.Int("shard", idx),
				zap.Any("panic", r),
			)
			panic(r)
		}
	}()

	membership := s.core.MembershipOf(key)
	obj, err = s.core.Lookup(key)

	switch membership {
	case arc.NotPresent:
		s.misses.Add(1)
		c.opt.Metrics.Miss()
	case arc.Resident:
		s.hits.Add(1)
		c.opt.Metrics.Hit()
	case arc.GhostRecency:
		c.opt.Metrics.GhostHit(GhostB1)
	case arc.GhostFrequency:
		c.opt.Metrics.GhostHit(GhostB2)
	}

	if err != nil {
		c.opt.Logger.Warn("arc: Lookup failed",
			zap.Int("shard", idx),
			zap.Error(err),
		)
	}

	t1, t2, b1, b2 := s.core.Sizes()
	c.opt.Metrics.Sizes(t1, t2, b1, b2)
	c.opt.Metrics.Adjust(s.core.Target(), s.core.Cap())

	return obj, err
}

// WarmKeys concurrently looks up every key, one goroutine per key capped
// by the usual Go scheduler limits, stopping at the first error (or at
// ctx cancellation) and returning it. It exists to amortize Fetch's
// latency across many keys at startup, the way a cache's cold-start path
// usually wants to.
func (c *Cache[K, V]) WarmKeys(ctx context.Context, keys []K) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			_, err := c.Lookup(key)
			return err
		})
	}
	return g.Wait()
}

// Len returns the total number of indexed records (resident + ghost)
// across all shards.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		s.mu.Lock()
		total += s.core.Len()
		s.mu.Unlock()
	}
	return total
}

// Close tears down every shard's cache, releasing every resident and
// ghost record via the host's Evict/Destroy callbacks (arc.Cache.Close).
// After Close returns, the Cache must not be used again.
func (c *Cache[K, V]) Close() {
	c.closed.Store(true)
	for _, s := range c.shards {
		s.mu.Lock()
		s.core.Close()
		s.mu.Unlock()
	}
}

// shardIndex hashes key and maps it to a shard, using a fast mask path
// when the shard count is a power of two.
func (c *Cache[K, V]) shardIndex(key K) int {
	return util.ShardIndex(c.hash(key), len(c.shards))
}
