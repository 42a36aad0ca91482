package arc

// target names the destination of a move; stateNone means "remove from
// the cache entirely."
type target = state

// move is the single chokepoint where list membership changes. It is the
// only place Fetch is invoked, and apart from Close (which tears down
// every list) the only place Evict/Destroy are invoked.
//
// On success it returns obj with obj.state == tgt. On a Fetch failure it
// restores obj to the list it occupied before the call (matching the
// bookkeeping it had) and trims the ghost lists back to c again, or, for
// a freshly created record that occupied no list, removes it from the
// index and destroys it. It then returns a nil object and a non-nil
// *Error — the caller (Lookup) must treat this as "no record".
func (c *Cache[K, V]) move(obj *Object[K, V], tgt target) (*Object[K, V], error) {
	prev := obj.state
	if prev != stateNone {
		c.listFor(prev).unlink(obj)
	}

	switch tgt {
	case stateNone:
		delete(c.index, obj.key)
		c.ops.Destroy(obj)
		return nil, nil

	case stateB1, stateB2:
		// Demotion to a ghost list only ever shrinks resident weight,
		// so no rebalance is needed before it.
		c.ops.Evict(obj)

	default: // stateT1 or stateT2: admission into a resident list.
		wasResident := prev == stateT1 || prev == stateT2
		if !wasResident {
			// Coming from a ghost list or from "none": this is a
			// genuine admission. Make room first, then fetch.
			c.balance(obj.size)
			if err := c.ops.Fetch(obj); err != nil {
				obj.state = prev
				if prev != stateNone {
					c.listFor(prev).pushFront(obj)
					// balance ran with obj unlinked; restoring a ghost
					// can push B1+B2 past c, so trim the ghosts again.
					c.balance(0)
				} else {
					delete(c.index, obj.key)
					c.ops.Destroy(obj)
				}
				return nil, &Error{Op: "fetch", Key: obj.key, Err: err}
			}
		}
		// T1->T2 or T2->T2 transitions are reorders: the payload is
		// already resident, so Fetch must not run again.
	}

	obj.state = tgt
	c.listFor(tgt).pushFront(obj)
	return obj, nil
}
