package arc

// Ops is the capability bundle a host supplies to a Cache. All six
// operations must be present and stable for the cache's lifetime.
//
// This is expressed as an interface rather than a struct of function
// values to match this codebase's convention of binding host behavior
// through small interfaces.
type Ops[K comparable, V any] interface {
	// Hash returns a deterministic hash code for key. Distribution
	// quality is the host's concern. The core's index is a native Go map
	// keyed by K, so the core itself does not call Hash.
	Hash(key K) uint64

	// Cmp reports whether obj's key equals key. It need not define a
	// total order, only equality.
	Cmp(obj *Object[K, V], key K) bool

	// Create allocates a new object for key on a miss. Implementations
	// must call InitObject before returning, with the record's final
	// size. Create must not touch list linkage; the core owns it.
	// Returning an error aborts the Lookup that triggered the miss.
	Create(key K) (*Object[K, V], error)

	// Fetch populates obj's payload. It may be slow (disk, network).
	// Returning an error restores obj to the list it occupied before
	// the admission attempt (or destroys it, if it was freshly
	// created); the core does not retry.
	Fetch(obj *Object[K, V]) error

	// Evict releases obj's payload as it moves from a resident list
	// (T1/T2) to its matching ghost list. obj's key and memory remain
	// valid; the core keeps its index entry.
	Evict(obj *Object[K, V])

	// Destroy releases everything associated with obj: its key, its
	// object memory, any leftover resources. Destroy must not call
	// back into the Cache that invoked it.
	Destroy(obj *Object[K, V])
}
