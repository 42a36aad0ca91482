package arc

// list is a weighted doubly linked list of *Object: MRU at head, LRU at
// tail, with a running weight total. This is the "list discipline"
// component of the design: every insert/unlink is O(1) and keeps size in
// sync with membership.
type list[K comparable, V any] struct {
	head, tail *Object[K, V]
	size       int64 // sum of the linked records' Size()
	count      int   // number of records, for index-invariant bookkeeping
}

// pushFront links obj at the MRU end. obj must not already be linked
// anywhere; callers unlink it from its current list first via unlink.
func (l *list[K, V]) pushFront(obj *Object[K, V]) {
	obj.prev = nil
	obj.next = l.head
	if l.head != nil {
		l.head.prev = obj
	}
	l.head = obj
	if l.tail == nil {
		l.tail = obj
	}
	l.size += obj.size
	l.count++
}

// unlink detaches obj from this list in O(1) and decrements size/count.
// obj must currently be linked into this exact list.
func (l *list[K, V]) unlink(obj *Object[K, V]) {
	if obj.prev != nil {
		obj.prev.next = obj.next
	}
	if obj.next != nil {
		obj.next.prev = obj.prev
	}
	if l.head == obj {
		l.head = obj.next
	}
	if l.tail == obj {
		l.tail = obj.prev
	}
	obj.prev, obj.next = nil, nil
	l.size -= obj.size
	l.count--
}

// back returns the current LRU record, or nil if the list is empty.
func (l *list[K, V]) back() *Object[K, V] { return l.tail }

// drain removes and returns every record currently in the list, MRU
// first. Used only by Close/Destroy, which must collect records before
// invoking callbacks on them rather than iterating a list while mutating
// it.
func (l *list[K, V]) drain() []*Object[K, V] {
	out := make([]*Object[K, V], 0, l.count)
	for n := l.head; n != nil; {
		next := n.next
		out = append(out, n)
		n = next
	}
	l.head, l.tail = nil, nil
	l.size, l.count = 0, 0
	return out
}
