// Package shardedarc is a concurrent host around the single-threaded arc
// package: N independent *arc.Cache shards, each guarded by its own
// sync.Mutex, routed by a hash of the key. It adds everything the core
// deliberately leaves out — concurrency, metrics, structured logging,
// bulk warm-up — without touching the core's algorithm.
//
// Capacity is split evenly (ceil) across shards, so the effective total
// capacity is shards * perShardCap and may slightly exceed the requested
// value. Each shard tunes its own p independently; there is no global
// coordination of the adaptive target across shards.
package shardedarc
