package indexedset

import "time"

// checkOwned panics if ix belongs to another set, or to none. Passing a
// foreign index is a programmer error.
func (s *IndexedSet[T]) checkOwned(ix *FieldIndex[T]) {
	if ix == nil || ix.owner != s {
		panic("indexedset: field index is not registered with this set")
	}
}

// ContainsByField reports whether any member has the given value for the
// indexed field.
func (s *IndexedSet[T]) ContainsByField(ix *FieldIndex[T], value any) bool {
	s.checkOwned(ix)
	if ix.kind == KindUnique {
		_, ok := s.unique[ix.slot].Load(value)
		return ok
	}
	bucket, ok := s.nonUnique[ix.slot].Load(value)
	return ok && bucket.Len() > 0
}

// GetByField returns the members whose indexed field equals value: zero
// or one member for a unique index, any number for a non-unique one. The
// returned slice is a snapshot owned by the caller; it does not track
// later mutation.
func (s *IndexedSet[T]) GetByField(ix *FieldIndex[T], value any) []T {
	s.checkOwned(ix)
	start := time.Now()

	var out []T
	if ix.kind == KindUnique {
		if obj, ok := s.unique[ix.slot].Load(value); ok {
			out = []T{obj}
		}
	} else if bucket, ok := s.nonUnique[ix.slot].Load(value); ok {
		out = make([]T, 0, bucket.Len())
		bucket.Range(func(obj T) bool {
			out = append(out, obj)
			return true
		})
	}

	s.metrics.RecordLookup(time.Since(start), len(out))
	return out
}

// GetFirstByField returns one member whose indexed field equals value.
// For a non-unique index "first" is whichever member the bucket yields
// first; there is no ordering guarantee.
func (s *IndexedSet[T]) GetFirstByField(ix *FieldIndex[T], value any) (T, bool) {
	s.checkOwned(ix)
	start := time.Now()

	var obj T
	var ok bool
	if ix.kind == KindUnique {
		obj, ok = s.unique[ix.slot].Load(value)
	} else if bucket, found := s.nonUnique[ix.slot].Load(value); found {
		bucket.Range(func(v T) bool {
			obj, ok = v, true
			return false
		})
	}

	hits := 0
	if ok {
		hits = 1
	}
	s.metrics.RecordLookup(time.Since(start), hits)
	return obj, ok
}

// RemoveByField removes every member whose indexed field equals value
// and returns the number removed: at most one for a unique index, the
// whole bucket for a non-unique one. Each removal goes through the full
// per-member protocol, so concurrent adds to the same bucket may or may
// not be included.
func (s *IndexedSet[T]) RemoveByField(ix *FieldIndex[T], value any) int {
	s.checkOwned(ix)

	removed := 0
	if ix.kind == KindUnique {
		if obj, ok := s.unique[ix.slot].Load(value); ok && s.Remove(obj) {
			removed = 1
		}
	} else if bucket, ok := s.nonUnique[ix.slot].Load(value); ok {
		bucket.Range(func(obj T) bool {
			if s.Remove(obj) {
				removed++
			}
			return true
		})
	}

	s.logger.LogRemoveByField(ix.name, removed)
	return removed
}
