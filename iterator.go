package indexedset

// Iterator traverses the set and supports removing the most recently
// yielded member with the same consistency guarantees as Remove.
//
//	it := s.Iterator()
//	for it.Next() {
//	    if expired(it.Value()) {
//	        it.Remove()
//	    }
//	}
//
// The traversal works over a snapshot of the membership taken at
// creation; members added afterwards are not visited, and a member
// removed concurrently may still be yielded (its Remove then reports a
// no-op). Order is unspecified.
type Iterator[T comparable] struct {
	set       *IndexedSet[T]
	rest      []T
	cur       T
	yielded   bool
	canRemove bool
}

// Iterator returns a removal-safe iterator over the current members.
func (s *IndexedSet[T]) Iterator() *Iterator[T] {
	snap := make([]T, 0, s.Len())
	s.members.Range(func(obj T) bool {
		snap = append(snap, obj)
		return true
	})
	return &Iterator[T]{set: s, rest: snap}
}

// Next advances to the next member, reporting whether one was available.
func (it *Iterator[T]) Next() bool {
	if len(it.rest) == 0 {
		it.yielded = false
		it.canRemove = false
		return false
	}
	it.cur = it.rest[0]
	it.rest = it.rest[1:]
	it.yielded = true
	it.canRemove = true
	return true
}

// Value returns the member yielded by the last successful Next. It
// panics if Next has not been called or returned false.
func (it *Iterator[T]) Value() T {
	if !it.yielded {
		panic("indexedset: Iterator.Value before Next")
	}
	return it.cur
}

// Remove removes the member yielded by the last successful Next through
// the full removal protocol, keeping every index consistent. Calling it
// before Next, after Next returned false, or twice for the same member
// panics.
func (it *Iterator[T]) Remove() {
	if !it.canRemove {
		panic("indexedset: Iterator.Remove without a yielded element")
	}
	it.canRemove = false
	it.set.Remove(it.cur)
}
