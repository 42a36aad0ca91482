package arc

import (
	"reflect"
	"testing"
)

func assertList(t *testing.T, name string, got []string, want []string) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

// TestColdFill: four distinct misses into an empty c=4 cache land in T1,
// MRU-first, with p unchanged at c/2.
func TestColdFill(t *testing.T) {
	ops := &testOps{}
	c := newTestCache(t, ops, 4)

	for _, k := range []string{"a", "b", "c", "d"} {
		if _, err := c.Lookup(k); err != nil {
			t.Fatalf("Lookup(%s): %v", k, err)
		}
	}

	assertList(t, "T1", keysOf(&c.t1), []string{"d", "c", "b", "a"})
	assertList(t, "T2", keysOf(&c.t2), nil)
	assertList(t, "B1", keysOf(&c.b1), nil)
	assertList(t, "B2", keysOf(&c.b2), nil)
	if c.p != 2 {
		t.Fatalf("p = %d, want 2", c.p)
	}
}

// TestSpilloverToB1: a fifth miss evicts T1's LRU into B1 rather than
// growing past capacity.
func TestSpilloverToB1(t *testing.T) {
	ops := &testOps{}
	c := newTestCache(t, ops, 4)
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		if _, err := c.Lookup(k); err != nil {
			t.Fatalf("Lookup(%s): %v", k, err)
		}
	}

	assertList(t, "T1", keysOf(&c.t1), []string{"e", "d", "c", "b"})
	assertList(t, "T2", keysOf(&c.t2), nil)
	assertList(t, "B1", keysOf(&c.b1), []string{"a"})
	assertList(t, "B2", keysOf(&c.b2), nil)
	if c.p != 2 {
		t.Fatalf("p = %d, want 2", c.p)
	}
}

// TestPromotionToT2: re-looking-up a resident T1 key promotes it to T2
// without touching p.
func TestPromotionToT2(t *testing.T) {
	ops := &testOps{}
	c := newTestCache(t, ops, 4)
	for _, k := range []string{"a", "b", "c", "d"} {
		mustLookup(t, c, k)
	}

	mustLookup(t, c, "b")

	assertList(t, "T1", keysOf(&c.t1), []string{"d", "c", "a"})
	assertList(t, "T2", keysOf(&c.t2), []string{"b"})
	assertList(t, "B1", keysOf(&c.b1), nil)
	assertList(t, "B2", keysOf(&c.b2), nil)
	if c.p != 2 {
		t.Fatalf("p = %d, want 2", c.p)
	}
}

// TestB1GhostHitRaisesP: a ghost hit in B1 enlarges p and promotes the
// key into T2.
func TestB1GhostHitRaisesP(t *testing.T) {
	ops := &testOps{}
	c := newTestCache(t, ops, 4)
	for _, k := range []string{"a", "b", "c", "d", "e"} { // "a" spills to B1
		mustLookup(t, c, k)
	}

	mustLookup(t, c, "a")

	if c.p != 3 {
		t.Fatalf("p = %d, want 3", c.p)
	}
	if _, ok := c.index["a"]; !ok || c.index["a"].state != stateT2 {
		t.Fatalf("a must be resident in T2 after a B1 ghost hit")
	}
	if keysOf(&c.t2)[0] != "a" {
		t.Fatalf("a must be at the head of T2")
	}
}

// TestB2GhostHitLowersP: an item that drains from T2 into B2 and is then
// looked up again shrinks p and returns to T2.
func TestB2GhostHitLowersP(t *testing.T) {
	ops := &testOps{}
	c := newTestCache(t, ops, 2) // small capacity to force a T2->B2 drain

	mustLookup(t, c, "a")
	mustLookup(t, c, "b")
	mustLookup(t, c, "a") // promote a into T2; p stays at c/2 = 1

	if c.p != 1 {
		t.Fatalf("p = %d, want 1 before the ghost hit", c.p)
	}

	mustLookup(t, c, "x") // a new miss; T1.size(1) == p(1), so T2's LRU (a) drains to B2

	assertList(t, "B2", keysOf(&c.b2), []string{"a"})
	if c.index["a"].state != stateB2 {
		t.Fatalf("a must be a B2 ghost before the ghost hit")
	}

	mustLookup(t, c, "a") // B2 ghost hit

	if c.p != 0 {
		t.Fatalf("p = %d, want 0 after the B2 ghost hit", c.p)
	}
	if c.index["a"].state != stateT2 {
		t.Fatalf("a must be resident in T2 after a B2 ghost hit")
	}
}

// TestFetchFailureIsRecoverable: a failed Fetch on a brand-new key leaves
// the cache exactly as it was, and a later retry admits the key normally.
func TestFetchFailureIsRecoverable(t *testing.T) {
	ops := &testOps{failFetch: map[string]bool{"f": true}}
	c := newTestCache(t, ops, 4)
	mustLookup(t, c, "a")

	t1Before, t2Before, b1Before, b2Before := c.Sizes()
	pBefore := c.p

	if _, err := c.Lookup("f"); err == nil {
		t.Fatalf("Lookup(f) must fail on the configured fetch failure")
	}
	if _, ok := c.index["f"]; ok {
		t.Fatalf("f must not remain indexed after a fetch failure from a fresh create")
	}

	t1After, t2After, b1After, b2After := c.Sizes()
	if t1After != t1Before || t2After != t2Before || b1After != b1Before || b2After != b2Before || c.p != pBefore {
		t.Fatalf("sizes/p changed across a failed Lookup: before=(%d,%d,%d,%d,p=%d) after=(%d,%d,%d,%d,p=%d)",
			t1Before, t2Before, b1Before, b2Before, pBefore,
			t1After, t2After, b1After, b2After, c.p)
	}

	if _, err := c.Lookup("f"); err != nil {
		t.Fatalf("second Lookup(f) with fetch succeeding must admit f: %v", err)
	}
	if c.index["f"].state != stateT1 {
		t.Fatalf("f must be resident in T1 after the successful retry")
	}
}

// TestIdempotentHit is the "idempotent hit" law: two consecutive lookups
// of a T2 key leave it at T2's head and do not move p.
func TestIdempotentHit(t *testing.T) {
	ops := &testOps{}
	c := newTestCache(t, ops, 4)
	mustLookup(t, c, "a")
	mustLookup(t, c, "a") // promote to T2
	p1 := c.p

	mustLookup(t, c, "a")

	if keysOf(&c.t2) == nil || keysOf(&c.t2)[0] != "a" {
		t.Fatalf("a must remain at T2 head")
	}
	if c.p != p1 {
		t.Fatalf("p changed on a repeat T2 hit: %d -> %d", p1, c.p)
	}
}

// TestMonotoneTuning checks the B1 half of the "monotone tuning" law: a
// B1 hit never decreases p. The B2 half (a B2 hit lowers p) is checked by
// TestB2GhostHitLowersP.
func TestMonotoneTuning(t *testing.T) {
	ops := &testOps{}
	c := newTestCache(t, ops, 4)
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		mustLookup(t, c, k)
	}
	before := c.p
	mustLookup(t, c, "a") // B1 ghost hit
	if c.p < before {
		t.Fatalf("p decreased on a B1 ghost hit: %d -> %d", before, c.p)
	}
}

// TestDestroyOnFullEviction exercises Close(), asserting every indexed
// record receives exactly one Destroy call and, if resident, exactly one
// Evict call first.
func TestDestroyOnFullEviction(t *testing.T) {
	ops := &testOps{}
	c := newTestCache(t, ops, 4)
	for _, k := range []string{"a", "b", "c", "d", "e"} { // a -> B1
		mustLookup(t, c, k)
	}

	c.Close()

	destroyed := map[string]int{}
	evicted := map[string]int{}
	for _, call := range ops.calls {
		switch {
		case len(call) > 8 && call[:8] == "destroy:":
			destroyed[call[8:]]++
		case len(call) > 6 && call[:6] == "evict:":
			evicted[call[6:]]++
		}
	}
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		if destroyed[k] != 1 {
			t.Fatalf("key %s destroyed %d times, want 1", k, destroyed[k])
		}
	}
	// "a" had its one Evict call when it originally drained T1 -> B1;
	// the rest are evicted only now, as Close tears down T1. Either way
	// every key is evicted exactly once over its lifetime.
	for _, k := range []string{"a", "b", "c", "d", "e"} {
		if evicted[k] != 1 {
			t.Fatalf("key %s evicted %d times, want 1", k, evicted[k])
		}
	}
}

func mustLookup(t *testing.T, c *Cache[string, string], key string) *Object[string, string] {
	t.Helper()
	obj, err := c.Lookup(key)
	if err != nil {
		t.Fatalf("Lookup(%s): %v", key, err)
	}
	return obj
}
