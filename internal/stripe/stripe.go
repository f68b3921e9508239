// Package stripe implements a fixed-size striped lock table keyed by
// value identity, so that operations on the same value serialize without
// a global lock.
package stripe

import (
	"hash/maphash"
	"sync"
)

// DefaultShards is the default number of lock stripes.
const DefaultShards = 64

// Table maps values of type T onto a fixed set of mutexes by hashing the
// value. Two equal values always map to the same mutex; distinct values
// may collide onto one, which only adds contention, never unsafety.
type Table[T comparable] struct {
	seed  maphash.Seed
	locks []sync.Mutex
	mask  uint64
}

// New creates a table with at least shards stripes, rounded up to the
// next power of two. shards <= 0 selects DefaultShards.
func New[T comparable](shards int) *Table[T] {
	if shards <= 0 {
		shards = DefaultShards
	}
	n := 1
	for n < shards {
		n <<= 1
	}
	return &Table[T]{
		seed:  maphash.MakeSeed(),
		locks: make([]sync.Mutex, n),
		mask:  uint64(n - 1),
	}
}

// Shards returns the number of stripes.
func (t *Table[T]) Shards() int {
	return len(t.locks)
}

func (t *Table[T]) stripe(v T) *sync.Mutex {
	return &t.locks[maphash.Comparable(t.seed, v)&t.mask]
}

// Lock acquires the stripe for v.
func (t *Table[T]) Lock(v T) {
	t.stripe(v).Lock()
}

// Unlock releases the stripe for v.
func (t *Table[T]) Unlock(v T) {
	t.stripe(v).Unlock()
}
