package arc

// balance restores the size invariants so that incomingSize fresh weight
// can be admitted. It runs in two phases: first trim residents into
// their ghost lists, then trim the ghost lists themselves.
//
// Comparisons against p are strict (">" not ">="), so a T1 at exactly p
// is left alone and T2 is preferred as the tie-break. Phase 1 stops as
// soon as T1 is at or below p and T2 is empty, whether or not there is
// room yet; the record is admitted anyway and T1+T2 then exceeds c until
// later admissions drain it. This happens for a single record larger
// than c (T1 and T2 both empty), and also when T1 holds at least
// c-incomingSize+1 weight with T1 <= p and T2 empty (for example p == c
// after B1 ghost hits).
func (c *Cache[K, V]) balance(incomingSize int64) {
	for c.t1.size+c.t2.size+incomingSize > c.c {
		if c.t1.size > c.p {
			victim := c.t1.back()
			if victim == nil {
				break
			}
			c.move(victim, stateB1)
		} else if c.t2.size > 0 {
			victim := c.t2.back()
			if victim == nil {
				break
			}
			c.move(victim, stateB2)
		} else {
			break
		}
	}

	for c.b1.size+c.b2.size > c.c {
		if c.b2.size > c.p {
			victim := c.b2.back()
			if victim == nil {
				break
			}
			c.move(victim, stateNone)
		} else if c.b1.size > 0 {
			victim := c.b1.back()
			if victim == nil {
				break
			}
			c.move(victim, stateNone)
		} else {
			break
		}
	}
}
