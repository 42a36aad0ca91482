package shardedarc

import (
	"sync"

	"github.com/nmegiddo/arc/arc"
	"github.com/nmegiddo/arc/internal/util"
)

// testOps is a minimal, concurrency-safe Ops implementation: it is shared
// by every shard, so its own bookkeeping (the call log) needs its own
// lock independent of any shard's.
type testOps struct {
	mu    sync.Mutex
	calls []string
}

func (o *testOps) Hash(key string) uint64 { return util.Fnv64a(key) }

func (o *testOps) Cmp(obj *arc.Object[string, string], key string) bool { return obj.Key() == key }

func (o *testOps) Create(key string) (*arc.Object[string, string], error) {
	o.log("create:" + key)
	obj := new(arc.Object[string, string])
	arc.InitObject(obj, key, 1)
	return obj, nil
}

func (o *testOps) Fetch(obj *arc.Object[string, string]) error {
	o.log("fetch:" + obj.Key())
	*obj.Value() = "data:" + obj.Key()
	return nil
}

func (o *testOps) Evict(obj *arc.Object[string, string]) {
	o.log("evict:" + obj.Key())
	*obj.Value() = ""
}

func (o *testOps) Destroy(obj *arc.Object[string, string]) {
	o.log("destroy:" + obj.Key())
}

func (o *testOps) log(s string) {
	o.mu.Lock()
	o.calls = append(o.calls, s)
	o.mu.Unlock()
}
