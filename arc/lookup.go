package arc

// Lookup is the cache's single public data-path operation.
//
//   - Miss: Create(key) is called; on failure, Lookup returns that error
//     wrapped in an *Error with Op "create". Otherwise the new record is
//     admitted to T1.
//   - Hit in T1 or T2: the record is promoted to the head of T2.
//   - Hit in B1 (recency ghost): p grows toward T1, then the record is
//     admitted into T2 (Fetch runs).
//   - Hit in B2 (frequency ghost): p shrinks toward T2, then the record
//     is admitted into T2 (Fetch runs).
//
// A record found in the index but tagged stateNone is a broken
// invariant, not a data condition a caller can recover from; Lookup
// panics rather than returning a plausible-looking result.
func (c *Cache[K, V]) Lookup(key K) (*Object[K, V], error) {
	obj, ok := c.index[key]
	if !ok {
		created, err := c.ops.Create(key)
		if err != nil {
			return nil, &Error{Op: "create", Key: key, Err: err}
		}
		c.index[key] = created
		return c.move(created, stateT1)
	}

	switch obj.state {
	case stateT1, stateT2:
		return c.move(obj, stateT2)

	case stateB1:
		delta := max(c.b2.size/c.b1.size, 1)
		c.p = min(c.c, c.p+delta)
		return c.move(obj, stateT2)

	case stateB2:
		delta := max(c.b1.size/c.b2.size, 1)
		c.p = max(0, c.p-delta)
		return c.move(obj, stateT2)

	default:
		panic((&invalidStateError{Key: key}).Error())
	}
}
