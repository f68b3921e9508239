package indexedset

import (
	"errors"
	"fmt"
)

var (
	// ErrNoIndexes is returned by Build when no field index was configured.
	// A set with zero indexes is not a supported configuration.
	ErrNoIndexes = errors.New("indexedset: at least one field index is required")

	// ErrNilIndex is returned by Build when a nil FieldIndex was configured.
	ErrNilIndex = errors.New("indexedset: nil field index")

	// ErrIndexRebound is returned by Build when a FieldIndex instance is
	// already bound to another set. Each instance binds to exactly one set.
	ErrIndexRebound = errors.New("indexedset: field index already bound to a set")
)

// ConflictError is the panic value raised when a unique index receives a
// second member for a field value it already holds. This is a caller
// contract violation (two live members share a unique field value) and
// the set makes no attempt to repair its state afterward.
type ConflictError struct {
	Index string
	Value any
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("indexedset: unique index %q already holds a member for value %v", e.Index, e.Value)
}

// CorruptionError is the panic value raised when the membership store and
// an index are found to disagree, e.g. a bucket insert failing for a
// member that was just absent from the store. It indicates either
// concurrent mutation of an indexed field or a bug in the set itself.
type CorruptionError struct {
	Index string
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("indexedset: index %q is inconsistent with the membership store", e.Index)
}
