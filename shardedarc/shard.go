package shardedarc

import (
	"sync"

	"github.com/nmegiddo/arc/arc"
	"github.com/nmegiddo/arc/internal/util"
)

// shard is one independent arc.Cache partition plus the mutex that
// serializes access to it, matching the core's single-threaded contract.
type shard[K comparable, V any] struct {
	mu   sync.Mutex
	core *arc.Cache[K, V]

	_      util.CacheLinePad
	hits   util.PaddedAtomicInt64
	misses util.PaddedAtomicInt64
}

func newShard[K comparable, V any](ops arc.Ops[K, V], metrics Metrics, capacity int64) (*shard[K, V], error) {
	core, err := arc.NewCache[K, V](instrumentedOps[K, V]{Ops: ops, metrics: metrics}, capacity)
	if err != nil {
		return nil, err
	}
	return &shard[K, V]{core: core}, nil
}

// instrumentedOps wraps a host's Ops so the one callback that releases a
// resident payload (Evict) also reports to Metrics, without the core
// needing any notion of metrics at all.
type instrumentedOps[K comparable, V any] struct {
	arc.Ops[K, V]
	metrics Metrics
}

func (o instrumentedOps[K, V]) Evict(obj *arc.Object[K, V]) {
	o.Ops.Evict(obj)
	o.metrics.Evict()
}
