package shardedarc

import "go.uber.org/zap"

// Options configures a sharded cache. Zero values are safe; New applies
// sane defaults:
//   - Shards <= 0  => auto (util.ReasonableShardCount, rounded to power of two)
//   - nil Hash     => util.Fnv64a[K]
//   - nil Metrics  => NoopMetrics
//   - nil Logger   => zap.NewNop()
type Options[K comparable, V any] struct {
	// Shards is the number of independent arc.Cache partitions. If 0, an
	// automatic value is chosen from runtime parallelism and rounded up
	// to a power of two.
	Shards int

	// Hash routes a key to a shard. nil uses a built-in FNV-1a hasher
	// covering common key kinds (see internal/util.Fnv64a).
	Hash func(K) uint64

	// Metrics receives per-shard observability events. nil is a silent
	// no-op.
	Metrics Metrics

	// Logger receives structured diagnostics (failed Lookups, recovered
	// invalid-state panics). nil uses zap.NewNop().
	Logger *zap.Logger
}
