package indexedset_test

import (
	"fmt"
	"sort"

	"github.com/hupe1980/indexedset"
)

type Block struct {
	ID   int64
	Tier string
}

// Example demonstrates tracking blocks by a unique id and a non-unique
// storage tier with a single collection.
func Example() {
	idIndex := indexedset.UniqueIndex("id", func(b *Block) any { return b.ID })
	tierIndex := indexedset.NonUniqueIndex("tier", func(b *Block) any { return b.Tier })

	blocks := indexedset.New(idIndex, tierIndex)
	blocks.Add(&Block{ID: 1, Tier: "mem"})
	blocks.Add(&Block{ID: 2, Tier: "mem"})
	blocks.Add(&Block{ID: 3, Tier: "ssd"})

	b, _ := blocks.GetFirstByField(idIndex, int64(2))
	fmt.Println("block 2 tier:", b.Tier)

	inMem := blocks.GetByField(tierIndex, "mem")
	ids := make([]int64, 0, len(inMem))
	for _, blk := range inMem {
		ids = append(ids, blk.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	fmt.Println("mem blocks:", ids)

	fmt.Println("evicted:", blocks.RemoveByField(tierIndex, "mem"))
	fmt.Println("remaining:", blocks.Len())
	// Output:
	// block 2 tier: mem
	// mem blocks: [1 2]
	// evicted: 2
	// remaining: 1
}

// Example_iterator demonstrates removal-safe iteration.
func Example_iterator() {
	idIndex := indexedset.UniqueIndex("id", func(b *Block) any { return b.ID })
	tierIndex := indexedset.NonUniqueIndex("tier", func(b *Block) any { return b.Tier })
	blocks := indexedset.New(idIndex, tierIndex)

	blocks.Add(&Block{ID: 1, Tier: "mem"})
	blocks.Add(&Block{ID: 2, Tier: "ssd"})

	it := blocks.Iterator()
	for it.Next() {
		if it.Value().Tier == "ssd" {
			it.Remove()
		}
	}
	fmt.Println("remaining:", blocks.Len())
	// Output:
	// remaining: 1
}
