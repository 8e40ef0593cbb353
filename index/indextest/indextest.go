// Package indextest holds the conformance suite every index.Index
// implementation runs from its own tests.
package indextest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bstmap-bench/bmark/index"
)

// Factory returns a fresh, empty index.
type Factory func(t *testing.T) index.Index

func open(t *testing.T, f Factory) index.Index {
	t.Helper()
	idx := f(t)
	t.Cleanup(func() {
		require.NoError(t, idx.Close())
	})
	return idx
}

// Entries returns keys lo..hi in shuffled order with value key/10.
func Entries(lo, hi int64, seed int64) []index.Entry {
	r := rand.New(rand.NewSource(seed))
	entries := make([]index.Entry, 0, hi-lo+1)
	for _, i := range r.Perm(int(hi - lo + 1)) {
		k := lo + int64(i)
		entries = append(entries, index.Entry{Key: k, Value: float64(k) / 10})
	}
	return entries
}

func keysOf(entries []index.Entry) []int64 {
	keys := make([]int64, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	return keys
}

// Run exercises the whole index.Index contract against f.
func Run(t *testing.T, f Factory) {
	t.Run("Empty", func(t *testing.T) {
		idx := open(t, f)
		require.Equal(t, 0, idx.Len())
		_, err := idx.Get(1)
		require.ErrorIs(t, err, index.ErrNotFound)
		require.ErrorIs(t, idx.Delete(1), index.ErrNotFound)
		it, err := idx.Range(0, 10)
		require.NoError(t, err)
		got, err := index.Collect(it)
		require.NoError(t, err)
		require.Empty(t, got)
	})

	t.Run("LoadAndGet", func(t *testing.T) {
		idx := open(t, f)
		require.NoError(t, idx.Load(Entries(0, 99, 1)))
		require.Equal(t, 100, idx.Len())
		for k := int64(0); k < 100; k++ {
			v, err := idx.Get(k)
			require.NoError(t, err)
			require.Equal(t, float64(k)/10, v)
		}
		_, err := idx.Get(1000)
		require.ErrorIs(t, err, index.ErrNotFound)
	})

	t.Run("LoadKeepsFirstDuplicate", func(t *testing.T) {
		idx := open(t, f)
		require.NoError(t, idx.Load([]index.Entry{{Key: 1, Value: 1}, {Key: 2, Value: 2}, {Key: 1, Value: 3}}))
		require.Equal(t, 2, idx.Len())
		v, err := idx.Get(1)
		require.NoError(t, err)
		require.Equal(t, 1.0, v)
	})

	t.Run("InsertUpdates", func(t *testing.T) {
		idx := open(t, f)
		require.NoError(t, idx.Insert(5, 1.5))
		require.NoError(t, idx.Insert(3, 0.5))
		require.NoError(t, idx.Insert(5, 2.5))
		require.Equal(t, 2, idx.Len())
		v, err := idx.Get(5)
		require.NoError(t, err)
		require.Equal(t, 2.5, v)
	})

	t.Run("Delete", func(t *testing.T) {
		idx := open(t, f)
		require.NoError(t, idx.Load(Entries(0, 9, 2)))
		for _, k := range []int64{3, 0, 9, 5} {
			require.NoError(t, idx.Delete(k))
			_, err := idx.Get(k)
			require.ErrorIs(t, err, index.ErrNotFound)
			require.ErrorIs(t, idx.Delete(k), index.ErrNotFound)
		}
		require.Equal(t, 6, idx.Len())
		for _, k := range []int64{1, 2, 4, 6, 7, 8} {
			v, err := idx.Get(k)
			require.NoError(t, err)
			require.Equal(t, float64(k)/10, v)
		}
	})

	t.Run("Range", func(t *testing.T) {
		idx := open(t, f)
		require.NoError(t, idx.Load(Entries(-20, 49, 3)))

		it, err := idx.Range(10, 19)
		require.NoError(t, err)
		got, err := index.Collect(it)
		require.NoError(t, err)
		require.Equal(t, []int64{10, 11, 12, 13, 14, 15, 16, 17, 18, 19}, keysOf(got))
		require.Equal(t, 1.5, got[5].Value)

		it, err = idx.Range(-3, 2)
		require.NoError(t, err)
		got, err = index.Collect(it)
		require.NoError(t, err)
		require.Equal(t, []int64{-3, -2, -1, 0, 1, 2}, keysOf(got))

		it, err = idx.Range(60, 70)
		require.NoError(t, err)
		got, err = index.Collect(it)
		require.NoError(t, err)
		require.Empty(t, got)
	})
}
