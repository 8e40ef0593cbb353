package bst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

//	        50
//	    30      70
//	  20  40  60  80
//	     35 45
func sample() *Tree[int, int] {
	tree := New[int, int]()
	for _, k := range []int{50, 30, 70, 20, 40, 60, 80, 35, 45} {
		tree.Emplace(k, k)
	}
	return tree
}

func TestIterator_Walk(t *testing.T) {
	tree := sample()
	var keys []int
	for it := tree.Begin(); !it.Equal(tree.End()); it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{20, 30, 35, 40, 45, 50, 60, 70, 80}, keys)
}

func TestIterator_NextClimbs(t *testing.T) {
	tree := sample()

	it := tree.Find(45)
	it.Next()
	require.Equal(t, 50, it.Key())

	it = tree.Find(35)
	it.Next()
	require.Equal(t, 40, it.Key())

	it = tree.Find(80)
	it.Next()
	require.True(t, it.AtEnd())

	// root without a right sub-tree is the maximum
	single := NewPair(1, 1)
	it = single.Begin()
	it.Next()
	require.True(t, it.AtEnd())
}

func TestIterator_NextOnEnd(t *testing.T) {
	tree := sample()
	it := tree.End()
	it.Next()
	require.True(t, it.AtEnd())

	var zero Iterator[int, int]
	zero.Next()
	require.True(t, zero.AtEnd())
}

func TestIterator_DereferenceEnd(t *testing.T) {
	tree := sample()
	require.PanicsWithValue(t, ErrEndIterator, func() { tree.End().Key() })
	require.PanicsWithValue(t, ErrEndIterator, func() { tree.Find(99).Value() })
	require.PanicsWithValue(t, ErrEndIterator, func() { Iterator[int, int]{}.SetValue(1) })
}

func TestIterator_Predicates(t *testing.T) {
	tree := sample()

	root := tree.Root()
	require.Equal(t, 50, root.Key())
	require.True(t, root.IsRoot())
	require.False(t, root.IsLeftChild())
	require.False(t, root.IsRightChild())
	require.True(t, root.HasLeftChild())
	require.True(t, root.HasRightChild())
	require.False(t, root.IsLeaf())

	twenty := tree.Find(20)
	require.True(t, twenty.IsLeaf())
	require.True(t, twenty.IsLeftChild())
	require.False(t, twenty.IsRoot())

	fortyFive := tree.Find(45)
	require.True(t, fortyFive.IsRightChild())
	require.False(t, fortyFive.IsLeftChild())

	end := tree.End()
	require.False(t, end.IsLeaf())
	require.False(t, end.IsRoot())
	require.False(t, end.HasLeftChild())
	require.False(t, end.IsLeftChild())
}

func TestIterator_Equal(t *testing.T) {
	tree := sample()
	it := tree.Begin()
	it.Next()
	require.True(t, it.Equal(tree.Find(30)))
	require.False(t, it.Equal(tree.Begin()))
	require.True(t, tree.End().Equal(New[int, int]().End()))
}

func TestIterator_SetValue(t *testing.T) {
	tree := sample()
	it := tree.Find(60)
	it.SetValue(-60)
	v, ok := tree.Get(60)
	require.True(t, ok)
	require.Equal(t, -60, v)
	require.Equal(t, Pair[int, int]{60, -60}, it.Pair())
}

func TestIterator_CustomOrder(t *testing.T) {
	tree := NewFunc[int, int](func(a, b int) bool { return a > b })
	for _, k := range []int{5, 3, 8} {
		tree.Emplace(k, k)
	}

	// 8 sorts first, so it hangs on the left link despite the larger key
	it := tree.Begin()
	require.Equal(t, 8, it.Key())
	require.True(t, it.IsLeftChild())
	it.Next()
	require.Equal(t, 5, it.Key())
	it.Next()
	require.Equal(t, 3, it.Key())
	require.True(t, it.IsRightChild())
	it.Next()
	require.True(t, it.AtEnd())
}

func TestIterator_StaleAfterLeafErase(t *testing.T) {
	tree := sample()
	it := tree.Find(20)
	other := tree.Find(80)
	tree.Erase(20)

	require.PanicsWithValue(t, ErrStaleIterator, func() { it.Next() })
	require.PanicsWithValue(t, ErrStaleIterator, func() { it.IsLeaf() })
	require.Equal(t, 80, other.Key())
}

func TestIterator_StaleAfterClear(t *testing.T) {
	tree := sample()
	it := tree.Begin()
	tree.Clear()
	require.PanicsWithValue(t, ErrStaleIterator, func() { it.Value() })
	require.True(t, tree.Begin().AtEnd())
}

func TestIterator_SurvivesInsert(t *testing.T) {
	tree := sample()
	it := tree.Find(45)
	tree.Emplace(47, 47)
	it.Next()
	require.Equal(t, 47, it.Key())
}
