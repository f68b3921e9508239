package indexedset

import (
	"fmt"

	"github.com/hupe1980/indexedset/internal/cmap"
	"github.com/hupe1980/indexedset/internal/stripe"
)

// NewBuilder creates a builder for an IndexedSet.
//
// The builder is immutable - each method returns a new builder with the
// updated configuration. This ensures thread-safety and prevents
// accidental state sharing.
//
// Example:
//
//	s, err := indexedset.NewBuilder[*Block]().
//	    Index(idIndex).
//	    Index(tierIndex).
//	    LockShards(128).
//	    Logger(indexedset.NewTextLogger(slog.LevelDebug)).
//	    Build()
func NewBuilder[T comparable]() Builder[T] {
	return Builder[T]{}
}

// Builder is an immutable fluent builder for creating IndexedSet instances.
// Each method returns a new builder with the updated configuration.
type Builder[T comparable] struct {
	indexes    []*FieldIndex[T]
	lockShards int
	logger     *Logger
	metrics    MetricsCollector
}

// Index registers a field index. At least one is required.
func (b Builder[T]) Index(ix *FieldIndex[T]) Builder[T] {
	indexes := make([]*FieldIndex[T], len(b.indexes), len(b.indexes)+1)
	copy(indexes, b.indexes)
	b.indexes = append(indexes, ix)
	return b
}

// LockShards sets the size of the per-member lock table, rounded up to a
// power of two. More shards reduce contention between members that hash
// to the same stripe. Default: stripe.DefaultShards.
func (b Builder[T]) LockShards(n int) Builder[T] {
	b.lockShards = n
	return b
}

// Logger sets the logger. Default: NoopLogger().
func (b Builder[T]) Logger(l *Logger) Builder[T] {
	b.logger = l
	return b
}

// Metrics sets the metrics collector. Default: NoopMetricsCollector.
func (b Builder[T]) Metrics(m MetricsCollector) Builder[T] {
	b.metrics = m
	return b
}

// Build validates the configuration and creates the set, binding every
// registered FieldIndex to it. A FieldIndex instance can be bound to at
// most one set over its lifetime.
func (b Builder[T]) Build() (*IndexedSet[T], error) {
	if len(b.indexes) == 0 {
		return nil, ErrNoIndexes
	}

	// Validate before binding anything, so a failed Build leaves every
	// FieldIndex usable with a later builder.
	seen := make(map[*FieldIndex[T]]struct{}, len(b.indexes))
	for _, ix := range b.indexes {
		if ix == nil {
			return nil, ErrNilIndex
		}
		if ix.owner != nil {
			return nil, fmt.Errorf("%w: %q", ErrIndexRebound, ix.name)
		}
		if _, dup := seen[ix]; dup {
			return nil, fmt.Errorf("%w: %q", ErrIndexRebound, ix.name)
		}
		seen[ix] = struct{}{}
		if ix.kind != KindUnique && ix.kind != KindNonUnique {
			return nil, fmt.Errorf("indexedset: field index %q has invalid kind %d", ix.name, ix.kind)
		}
	}

	s := &IndexedSet[T]{
		members: cmap.NewSet[T](),
		locks:   stripe.New[T](b.lockShards),
		logger:  b.logger,
		metrics: b.metrics,
	}
	if s.logger == nil {
		s.logger = NoopLogger()
	}
	if s.metrics == nil {
		s.metrics = NoopMetricsCollector{}
	}

	for _, ix := range b.indexes {
		ix.owner = s
		if ix.kind == KindUnique {
			ix.slot = len(s.unique)
			s.unique = append(s.unique, &cmap.Map[any, T]{})
			s.uniqueIdx = append(s.uniqueIdx, ix)
		} else {
			ix.slot = len(s.nonUnique)
			s.nonUnique = append(s.nonUnique, &cmap.Map[any, *cmap.Set[T]]{})
			s.nonUniqueIdx = append(s.nonUniqueIdx, ix)
		}
	}
	return s, nil
}
