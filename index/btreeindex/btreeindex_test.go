package btreeindex

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bstmap-bench/bmark/index"
	"github.com/bstmap-bench/bmark/index/indextest"
)

func TestBTreeIndex(t *testing.T) {
	for _, degree := range []int{2, DefaultDegree} {
		indextest.Run(t, func(t *testing.T) index.Index { return New(degree) })
	}
}

func TestBTreeIndex_DegreeFallback(t *testing.T) {
	require.Equal(t, DefaultDegree, New(0).Degree())
	require.Equal(t, 8, New(8).Degree())
}

func TestBTreeIndex_RangeToMax(t *testing.T) {
	idx := New(4)
	require.NoError(t, idx.Load(indextest.Entries(0, 9, 7)))
	it, err := idx.Range(5, 1<<63-1)
	require.NoError(t, err)
	got, err := index.Collect(it)
	require.NoError(t, err)
	require.Len(t, got, 5)
	require.Equal(t, int64(5), got[0].Key)
}
