package arc

import (
	"errors"
	"fmt"
)

// testOps is a minimal, deterministic Ops implementation for unit tests:
// unit-weight records by default, an optional per-key size override, and
// a one-shot fetch-failure switch used to exercise the recoverable
// Fetch-failure path.
type testOps struct {
	sizeOf       func(key string) int64
	failFetch    map[string]bool
	createFailOn map[string]bool
	calls        []string
}

func (o *testOps) Hash(key string) uint64 { return 0 }

func (o *testOps) Cmp(obj *Object[string, string], key string) bool { return obj.Key() == key }

func (o *testOps) Create(key string) (*Object[string, string], error) {
	o.calls = append(o.calls, "create:"+key)
	if o.createFailOn[key] {
		return nil, errors.New("create refused")
	}
	sz := int64(1)
	if o.sizeOf != nil {
		sz = o.sizeOf(key)
	}
	obj := new(Object[string, string])
	InitObject(obj, key, sz)
	return obj, nil
}

func (o *testOps) Fetch(obj *Object[string, string]) error {
	k := obj.Key()
	o.calls = append(o.calls, "fetch:"+k)
	if o.failFetch[k] {
		delete(o.failFetch, k)
		return fmt.Errorf("fetch failed for %s", k)
	}
	*obj.Value() = "data:" + k
	return nil
}

func (o *testOps) Evict(obj *Object[string, string]) {
	o.calls = append(o.calls, "evict:"+obj.Key())
	*obj.Value() = ""
}

func (o *testOps) Destroy(obj *Object[string, string]) {
	o.calls = append(o.calls, "destroy:"+obj.Key())
}

// keysOf walks a list head-to-tail (MRU to LRU) and returns its keys, or
// nil for an empty list.
func keysOf[K comparable, V any](l *list[K, V]) []K {
	var out []K
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.key)
	}
	return out
}

func newTestCache(t interface {
	Helper()
	Fatalf(string, ...any)
}, ops *testOps, c int64) *Cache[string, string] {
	t.Helper()
	cache, err := NewCache[string, string](ops, c)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	return cache
}
