// Package arc implements an Adaptive Replacement Cache (ARC): a
// self-tuning replacement policy that maintains two resident LRU lists
// (T1 for items seen once, T2 for items seen at least twice) and two
// matching "ghost" lists of recently evicted keys (B1, B2) whose hit rate
// steers an adaptive target size p between the two resident lists.
//
// Design
//
//   - Single-threaded contract: a Cache has no internal locking. Callers
//     needing concurrent access must serialize their own calls, or shard
//     across multiple Cache instances — see the sibling shardedarc
//     package for a ready-made sharded host.
//
//   - Host-driven I/O: the cache does not store payloads itself beyond
//     the value slot the host's Ops.Fetch populates. Ops.Fetch/Evict/
//     Destroy are invoked from the single chokepoint move() as records
//     cross list boundaries (and Evict/Destroy from Close at teardown),
//     so a host can back the cache with disk, network, or any other
//     out-of-process store.
//
//   - Weighted admission: every record carries a Size, not just a slot;
//     T1+T2 is kept at or below the capacity target c, except
//     transiently when balance cannot free enough room: a single record
//     whose Size exceeds c, or T1 at or below p with T2 empty — see
//     balance.go.
//
// Basic usage
//
//	type fileOps struct{ /* ... */ }
//	func (fileOps) Hash(k string) uint64 { /* ... */ }
//	func (fileOps) Cmp(obj *arc.Object[string, []byte], k string) bool { return obj.Key() == k }
//	func (o fileOps) Create(k string) (*arc.Object[string, []byte], error) {
//	    obj := new(arc.Object[string, []byte])
//	    arc.InitObject(obj, k, sizeOf(k))
//	    return obj, nil
//	}
//	func (fileOps) Fetch(obj *arc.Object[string, []byte]) error  { /* populate *obj.Value() */ return nil }
//	func (fileOps) Evict(obj *arc.Object[string, []byte])        { *obj.Value() = nil }
//	func (fileOps) Destroy(obj *arc.Object[string, []byte])      {}
//
//	c, err := arc.NewCache[string, []byte](fileOps{}, 64*1024*1024)
//	obj, err := c.Lookup("some/path")
package arc
