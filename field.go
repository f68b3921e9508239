package indexedset

// IndexKind tags a FieldIndex as unique or non-unique.
type IndexKind uint8

const (
	// KindUnique marks an index where each field value maps to at most
	// one member.
	KindUnique IndexKind = iota + 1
	// KindNonUnique marks an index where a field value may map to any
	// number of members.
	KindNonUnique
)

// String implements fmt.Stringer.
func (k IndexKind) String() string {
	switch k {
	case KindUnique:
		return "unique"
	case KindNonUnique:
		return "non-unique"
	default:
		return "unknown"
	}
}

// FieldIndex describes one indexed field of a member: a name, an
// extractor returning the field value, and a uniqueness tag. The
// extracted value is used as a map key and must be comparable.
//
// A FieldIndex is bound to exactly one IndexedSet at Build time; use the
// same instance for construction and for every query that refers to the
// same index. The extractor must be cheap and side-effect free, and the
// field it reads must not change while the member is in the set.
type FieldIndex[T comparable] struct {
	name    string
	kind    IndexKind
	extract func(T) any

	// Assigned at Build: the slot into the owning set's registry for
	// this kind. Queries resolve the index through this handle instead
	// of relying on map-key identity.
	owner *IndexedSet[T]
	slot  int
}

// UniqueIndex defines a unique field index. extract must return a
// distinct value for every member that will be in the set at the same
// time; violating this is a fatal error at Add time.
func UniqueIndex[T comparable](name string, extract func(T) any) *FieldIndex[T] {
	return &FieldIndex[T]{name: name, kind: KindUnique, extract: extract}
}

// NonUniqueIndex defines a non-unique field index. Members sharing an
// extracted value are grouped in one bucket.
func NonUniqueIndex[T comparable](name string, extract func(T) any) *FieldIndex[T] {
	return &FieldIndex[T]{name: name, kind: KindNonUnique, extract: extract}
}

// Name returns the index name.
func (ix *FieldIndex[T]) Name() string { return ix.name }

// Kind returns the uniqueness tag.
func (ix *FieldIndex[T]) Kind() IndexKind { return ix.kind }
