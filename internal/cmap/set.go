package cmap

import (
	"iter"
	"sync/atomic"
)

// Set is a concurrent set of comparable values. Membership operations are
// lock-free (delegated to sync.Map) and Len is O(1) via an atomic counter.
// The zero value is empty and ready for use.
type Set[T comparable] struct {
	m   Map[T, struct{}]
	len atomic.Int64
}

// NewSet returns an empty set.
func NewSet[T comparable]() *Set[T] {
	return &Set[T]{}
}

// Add inserts v and reports whether it was absent.
func (s *Set[T]) Add(v T) bool {
	if _, loaded := s.m.LoadOrStore(v, struct{}{}); loaded {
		return false
	}
	s.len.Add(1)
	return true
}

// Remove deletes v and reports whether it was present.
func (s *Set[T]) Remove(v T) bool {
	if _, loaded := s.m.LoadAndDelete(v); !loaded {
		return false
	}
	s.len.Add(-1)
	return true
}

// Contains reports whether v is in the set.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.m.Load(v)
	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return int(s.len.Load())
}

// Range calls f for each element until f returns false, with the same
// weak-consistency caveats as Map.Range.
func (s *Set[T]) Range(f func(v T) bool) {
	s.m.Range(func(k T, _ struct{}) bool {
		return f(k)
	})
}

// All returns an iterator over the elements, in no particular order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		s.Range(yield)
	}
}
