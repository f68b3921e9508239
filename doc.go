// Package indexedset provides a thread-safe set queryable by indexed
// fields of its members.
//
// An IndexedSet stores each member exactly once while answering O(1)
// exact-match lookups by one or more secondary fields, without the
// caller maintaining parallel hand-written maps. It is the kind of
// primitive a storage server uses to track live entities (blocks,
// sessions, directories) simultaneously by id, by name, and by other
// non-unique attributes under concurrent mutation.
//
// # Quick Start
//
// Suppose a worker tracks blocks by a unique id and a non-unique tier:
//
//	type Block struct {
//	    ID   int64
//	    Tier string
//	}
//
//	idIndex := indexedset.UniqueIndex("id", func(b *Block) any { return b.ID })
//	tierIndex := indexedset.NonUniqueIndex("tier", func(b *Block) any { return b.Tier })
//
//	blocks := indexedset.New(idIndex, tierIndex)
//	blocks.Add(&Block{ID: 1, Tier: "mem"})
//	blocks.Add(&Block{ID: 2, Tier: "mem"})
//
//	b, ok := blocks.GetFirstByField(idIndex, int64(1))
//	inMem := blocks.GetByField(tierIndex, "mem") // both blocks
//	evicted := blocks.RemoveByField(tierIndex, "mem")
//
// For configuration (lock shards, logging, metrics) use the fluent
// builder:
//
//	blocks, err := indexedset.NewBuilder[*Block]().
//	    Index(idIndex).
//	    Index(tierIndex).
//	    LockShards(128).
//	    Build()
//
// # Caller Contract
//
// Members are compared with ==; for pointer members that is pointer
// identity. Indexed fields must not change while a member is in the set,
// and logically-equal-but-distinct instances must not be added or
// removed concurrently. The set does not detect violations of the first
// rule; violations of a unique index's one-member-per-value rule are
// fatal (see ConflictError).
//
// Add and Remove are atomic across the membership store and every index
// with respect to operations on other members. Consistency is achieved
// with a per-member striped lock, not a global one, so unrelated members
// never contend.
package indexedset
