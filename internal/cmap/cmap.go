// Package cmap provides typed wrappers around sync.Map: a generic
// concurrent map and a concurrent set with an O(1) length counter.
package cmap

import "sync"

// Map is a typed concurrent map built on sync.Map. The zero value is
// empty and ready for use.
//
// CompareAndDelete requires V to be comparable, same as sync.Map.
type Map[K comparable, V any] struct {
	sm sync.Map
}

// Load returns the value stored for key, if any.
func (m *Map[K, V]) Load(key K) (value V, ok bool) {
	v, ok := m.sm.Load(key)
	if !ok {
		return value, false
	}
	return v.(V), true
}

// Store sets the value for key.
func (m *Map[K, V]) Store(key K, value V) {
	m.sm.Store(key, value)
}

// LoadOrStore returns the existing value for key if present; otherwise
// it stores and returns value. loaded is true if the value was present.
func (m *Map[K, V]) LoadOrStore(key K, value V) (actual V, loaded bool) {
	a, loaded := m.sm.LoadOrStore(key, value)
	return a.(V), loaded
}

// LoadAndDelete deletes the entry for key, returning the previous value
// if any. loaded is true if the entry was present.
func (m *Map[K, V]) LoadAndDelete(key K) (value V, loaded bool) {
	v, loaded := m.sm.LoadAndDelete(key)
	if !loaded {
		return value, false
	}
	return v.(V), true
}

// Delete removes the entry for key.
func (m *Map[K, V]) Delete(key K) {
	m.sm.Delete(key)
}

// CompareAndDelete deletes the entry for key only if its value equals old.
func (m *Map[K, V]) CompareAndDelete(key K, old V) bool {
	return m.sm.CompareAndDelete(key, old)
}

// Range calls f for each entry until f returns false. Like sync.Map.Range
// it does not correspond to a consistent snapshot: entries stored or
// deleted concurrently may or may not be visited.
func (m *Map[K, V]) Range(f func(key K, value V) bool) {
	m.sm.Range(func(key, value any) bool {
		return f(key.(K), value.(V))
	})
}
