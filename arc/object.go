package arc

// state tags which of the four lists currently holds a record, or none.
// A tagged enum is used instead of a back-pointer to the containing list
// so the record stays comparable and the zero value is meaningful.
type state uint8

const (
	stateNone state = iota
	stateT1
	stateT2
	stateB1
	stateB2
)

func (s state) String() string {
	switch s {
	case stateNone:
		return "none"
	case stateT1:
		return "T1"
	case stateT2:
		return "T2"
	case stateB1:
		return "B1"
	case stateB2:
		return "B2"
	default:
		return "invalid"
	}
}

// Object is a cached record's metadata. The host's Create callback
// allocates one and calls InitObject, which records the key and weight
// and zeroes the linkage fields.
//
// No field is exported: key and size are set only through InitObject,
// the payload is reached through Value, and list linkage is private and
// owned entirely by the core.
type Object[K comparable, V any] struct {
	key   K
	value V

	size  int64
	state state

	prev, next *Object[K, V] // list linkage; meaningless when state == stateNone
}

// InitObject zeroes an object's linkage and records its size. The host's
// Create callback must call this exactly once, before returning, with a
// strictly positive size.
func InitObject[K comparable, V any](obj *Object[K, V], key K, size int64) {
	obj.key = key
	obj.size = size
	obj.state = stateNone
	obj.prev, obj.next = nil, nil
}

// Key returns the key this record was created for.
func (o *Object[K, V]) Key() K { return o.key }

// Value returns a pointer to the host-owned payload slot. It is valid to
// read through this pointer only while the record is resident (T1 or T2);
// after Evict releases the payload the host should not dereference it.
func (o *Object[K, V]) Value() *V { return &o.value }

// Size returns the record's fixed weight, as set by InitObject.
func (o *Object[K, V]) Size() int64 { return o.size }
