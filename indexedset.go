package indexedset

import (
	"iter"
	"time"

	"github.com/hupe1980/indexedset/internal/cmap"
	"github.com/hupe1980/indexedset/internal/stripe"
)

// IndexedSet is a thread-safe set of members queryable by indexed fields.
// Each member is stored once; every registered index is kept consistent
// with the membership store on Add and Remove.
//
// Members are compared with ==, so for pointer members identity is
// pointer identity. The zero value of T is reserved and must never be
// added. Indexed fields must not change while a member is in the set.
//
// Add and Remove of the same member value serialize on a per-member
// lock, so a member is never observed half-added or half-removed by an
// operation on another member. Concurrent Add/Remove of distinct members
// that share a unique field value is a caller contract violation; the
// set detects it as a fatal ConflictError rather than excluding it.
type IndexedSet[T comparable] struct {
	members *cmap.Set[T]

	// Registries are fixed at Build and read-only afterwards; only the
	// inner maps and buckets mutate. Slices are addressed by the slot
	// handle stored on each bound FieldIndex.
	unique       []*cmap.Map[any, T]
	uniqueIdx    []*FieldIndex[T]
	nonUnique    []*cmap.Map[any, *cmap.Set[T]]
	nonUniqueIdx []*FieldIndex[T]

	locks   *stripe.Table[T]
	logger  *Logger
	metrics MetricsCollector
}

// New creates an IndexedSet over the given field indexes. At least one
// index is required, enforced by the signature. It panics on a nil or
// already-bound index; use NewBuilder to handle configuration errors as
// values, or to set a logger, metrics collector, or lock shard count.
func New[T comparable](first *FieldIndex[T], more ...*FieldIndex[T]) *IndexedSet[T] {
	b := NewBuilder[T]().Index(first)
	for _, ix := range more {
		b = b.Index(ix)
	}
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Add inserts obj and reports whether it was absent. A duplicate add
// leaves the set unchanged and returns false. Adding the zero value of T
// panics. If a unique index already holds a different member for one of
// obj's field values, Add panics with a *ConflictError and the set is
// left inconsistent.
func (s *IndexedSet[T]) Add(obj T) bool {
	var zero T
	if obj == zero {
		panic("indexedset: Add of zero member")
	}

	start := time.Now()
	s.locks.Lock(obj)
	added := s.addLocked(obj)
	s.locks.Unlock(obj)

	s.metrics.RecordAdd(time.Since(start), added)
	s.logger.LogAdd(added, s.Len())
	return added
}

func (s *IndexedSet[T]) addLocked(obj T) bool {
	// The store insert is the linearization point for duplicate adds:
	// losing it means another thread already owns this member.
	if !s.members.Add(obj) {
		return false
	}

	for i, ix := range s.uniqueIdx {
		value := ix.extract(obj)
		if _, loaded := s.unique[i].LoadOrStore(value, obj); loaded {
			// The store already diverged from this index; no repair.
			panic(&ConflictError{Index: ix.name, Value: value})
		}
	}

	for i, ix := range s.nonUniqueIdx {
		value := ix.extract(obj)
		bucket, ok := s.nonUnique[i].Load(value)
		if !ok {
			bucket, _ = s.nonUnique[i].LoadOrStore(value, cmap.NewSet[T]())
		}
		if !bucket.Add(obj) {
			// obj was just absent from the store, and the store is the
			// union of all buckets, so this insert cannot fail under the
			// caller contract.
			panic(&CorruptionError{Index: ix.name})
		}
	}
	return true
}

// Remove deletes obj and reports whether it was present. Removing the
// zero value of T panics.
func (s *IndexedSet[T]) Remove(obj T) bool {
	var zero T
	if obj == zero {
		panic("indexedset: Remove of zero member")
	}

	start := time.Now()
	s.locks.Lock(obj)
	removed := s.removeLocked(obj)
	s.locks.Unlock(obj)

	s.metrics.RecordRemove(time.Since(start), removed)
	s.logger.LogRemove(removed, s.Len())
	return removed
}

// removeLocked takes obj out of every index before the membership store,
// so readers may briefly miss it in an index while it is still a member,
// but never the other way around.
func (s *IndexedSet[T]) removeLocked(obj T) bool {
	if !s.members.Contains(obj) {
		return false
	}
	s.removeFromIndexes(obj)
	return s.members.Remove(obj)
}

func (s *IndexedSet[T]) removeFromIndexes(obj T) {
	for i, ix := range s.uniqueIdx {
		// Delete only if the value still maps to obj, in case a stale
		// entry was already replaced.
		s.unique[i].CompareAndDelete(ix.extract(obj), obj)
	}
	for i, ix := range s.nonUniqueIdx {
		if bucket, ok := s.nonUnique[i].Load(ix.extract(obj)); ok {
			bucket.Remove(obj)
		}
	}
	// Emptied buckets are kept; they are reused when the value recurs.
}

// Contains reports whether obj is currently a member.
func (s *IndexedSet[T]) Contains(obj T) bool {
	return s.members.Contains(obj)
}

// Len returns the number of members in O(1).
func (s *IndexedSet[T]) Len() int {
	return s.members.Len()
}

// All returns a live iterator over the members, in no particular order.
// Concurrent mutation yields an unspecified but memory-safe set of
// visited members. Use Iterator to remove members during traversal.
func (s *IndexedSet[T]) All() iter.Seq[T] {
	return s.members.All()
}

// Clear removes every current member through the standard per-member
// removal path and returns the number removed. It is not atomic as a
// whole: concurrent adds are permitted and may survive it.
func (s *IndexedSet[T]) Clear() int {
	start := time.Now()
	removed := 0
	s.members.Range(func(obj T) bool {
		s.locks.Lock(obj)
		if s.removeLocked(obj) {
			removed++
		}
		s.locks.Unlock(obj)
		return true
	})

	s.metrics.RecordClear(removed, time.Since(start))
	s.logger.LogClear(removed)
	return removed
}
