package indexedset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator(t *testing.T) {
	t.Run("VisitsAll", func(t *testing.T) {
		s, _, _ := newBlockSet(t)

		want := []*block{
			{id: 1, category: "a"},
			{id: 2, category: "a"},
			{id: 3, category: "b"},
		}
		for _, b := range want {
			s.Add(b)
		}

		var got []*block
		it := s.Iterator()
		for it.Next() {
			got = append(got, it.Value())
		}
		assert.ElementsMatch(t, want, got)
	})

	t.Run("RemoveMatchesDirectRemove", func(t *testing.T) {
		direct, directID, directCat := newBlockSet(t)
		viaIter, iterID, iterCat := newBlockSet(t)

		for _, s := range []*IndexedSet[*block]{direct, viaIter} {
			s.Add(&block{id: 1, category: "a"})
			s.Add(&block{id: 2, category: "a"})
			s.Add(&block{id: 3, category: "b"})
		}

		target, ok := direct.GetFirstByField(directID, int64(2))
		require.True(t, ok)
		require.True(t, direct.Remove(target))

		it := viaIter.Iterator()
		for it.Next() {
			if it.Value().id == 2 {
				it.Remove()
			}
		}

		assert.Equal(t, direct.Len(), viaIter.Len())
		for _, id := range []int64{1, 2, 3} {
			assert.Equal(t,
				len(direct.GetByField(directID, id)),
				len(viaIter.GetByField(iterID, id)), "id %d", id)
		}
		for _, cat := range []string{"a", "b"} {
			assert.Equal(t,
				len(direct.GetByField(directCat, cat)),
				len(viaIter.GetByField(iterCat, cat)), "category %q", cat)
		}
	})

	t.Run("RemoveAll", func(t *testing.T) {
		s, idIdx, catIdx := newBlockSet(t)
		s.Add(&block{id: 1, category: "a"})
		s.Add(&block{id: 2, category: "b"})

		it := s.Iterator()
		for it.Next() {
			it.Remove()
		}
		assert.Equal(t, 0, s.Len())
		assert.Empty(t, s.GetByField(idIdx, int64(1)))
		assert.Empty(t, s.GetByField(catIdx, "a"))
	})

	t.Run("RemovedElsewhereIsNoop", func(t *testing.T) {
		s, _, _ := newBlockSet(t)
		b := &block{id: 1, category: "a"}
		s.Add(b)

		it := s.Iterator()
		require.True(t, it.Next())
		require.True(t, s.Remove(b))
		it.Remove() // already gone, must not panic
		assert.Equal(t, 0, s.Len())
	})

	t.Run("MisusePanics", func(t *testing.T) {
		s, _, _ := newBlockSet(t)
		s.Add(&block{id: 1, category: "a"})

		it := s.Iterator()
		assert.Panics(t, func() { it.Value() })
		assert.Panics(t, func() { it.Remove() })

		require.True(t, it.Next())
		it.Remove()
		assert.Panics(t, func() { it.Remove() }, "double remove of one element")

		require.False(t, it.Next())
		assert.Panics(t, func() { it.Value() })
		assert.Panics(t, func() { it.Remove() })
	})
}
