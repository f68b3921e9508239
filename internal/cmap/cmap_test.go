package cmap

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("LoadStore", func(t *testing.T) {
		var m Map[string, int]

		_, ok := m.Load("a")
		assert.False(t, ok)

		m.Store("a", 1)
		v, ok := m.Load("a")
		require.True(t, ok)
		assert.Equal(t, 1, v)

		m.Delete("a")
		_, ok = m.Load("a")
		assert.False(t, ok)
	})

	t.Run("LoadOrStore", func(t *testing.T) {
		var m Map[string, int]

		actual, loaded := m.LoadOrStore("a", 1)
		assert.False(t, loaded)
		assert.Equal(t, 1, actual)

		actual, loaded = m.LoadOrStore("a", 2)
		assert.True(t, loaded)
		assert.Equal(t, 1, actual)
	})

	t.Run("LoadAndDelete", func(t *testing.T) {
		var m Map[string, int]
		m.Store("a", 1)

		v, loaded := m.LoadAndDelete("a")
		require.True(t, loaded)
		assert.Equal(t, 1, v)

		_, loaded = m.LoadAndDelete("a")
		assert.False(t, loaded)
	})

	t.Run("CompareAndDelete", func(t *testing.T) {
		var m Map[string, int]
		m.Store("a", 1)

		assert.False(t, m.CompareAndDelete("a", 2))
		_, ok := m.Load("a")
		assert.True(t, ok)

		assert.True(t, m.CompareAndDelete("a", 1))
		_, ok = m.Load("a")
		assert.False(t, ok)
	})

	t.Run("Range", func(t *testing.T) {
		var m Map[int, int]
		for i := range 10 {
			m.Store(i, i*i)
		}

		seen := map[int]int{}
		m.Range(func(k, v int) bool {
			seen[k] = v
			return true
		})
		assert.Len(t, seen, 10)
		assert.Equal(t, 49, seen[7])
	})
}

func TestSet(t *testing.T) {
	t.Run("AddRemoveContains", func(t *testing.T) {
		s := NewSet[string]()

		assert.True(t, s.Add("a"))
		assert.False(t, s.Add("a"))
		assert.True(t, s.Contains("a"))
		assert.Equal(t, 1, s.Len())

		assert.True(t, s.Remove("a"))
		assert.False(t, s.Remove("a"))
		assert.False(t, s.Contains("a"))
		assert.Equal(t, 0, s.Len())
	})

	t.Run("All", func(t *testing.T) {
		s := NewSet[int]()
		for i := range 5 {
			s.Add(i)
		}

		var got []int
		for v := range s.All() {
			got = append(got, v)
		}
		assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, got)
	})

	t.Run("ConcurrentLen", func(t *testing.T) {
		s := NewSet[int]()

		var wg sync.WaitGroup
		for w := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range 1000 {
					v := w*1000 + i
					s.Add(v)
					if v%2 == 0 {
						s.Remove(v)
					}
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 4000, s.Len())
	})
}
