package arc

import "fmt"

// Error wraps a recoverable Lookup failure: the underlying Create or
// Fetch error, tagged with which callback produced it. Both are
// recoverable outcomes — the cache is left consistent and the caller may
// retry.
type Error struct {
	Op  string // "create" or "fetch"
	Key any
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("arc: %s(%v): %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// invalidStateError formats the message Lookup panics with (its Error()
// string) when a record is found in the index but is tagged stateNone on
// a hit path — a broken invariant, not a data
// condition a caller can recover from. The design prefers loud failure to
// silent corruption here, because the four-list discipline is
// unrecoverable once broken.
type invalidStateError struct {
	Key any
}

func (e *invalidStateError) Error() string {
	return fmt.Sprintf("arc: invalid state: key %v is indexed but linked into no list", e.Key)
}
