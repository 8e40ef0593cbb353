package bst

import (
	"bytes"
	"maps"
	"slices"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-uuid"
	"github.com/stretchr/testify/require"
)

func pairsOf(keys ...int) []Pair[int, int] {
	pairs := make([]Pair[int, int], len(keys))
	for i, k := range keys {
		pairs[i] = Pair[int, int]{Key: k, Value: k * 10}
	}
	return pairs
}

func rangePairs(lo, hi int) []Pair[int, int] {
	var keys []int
	for k := lo; k <= hi; k++ {
		keys = append(keys, k)
	}
	return pairsOf(keys...)
}

// preorder keys, which pins down the shape of a tree
func shape[K, V any](t *Tree[K, V]) []K {
	var keys []K
	var walk func(*node[K, V])
	walk = func(n *node[K, V]) {
		if n == nil {
			return
		}
		keys = append(keys, n.pair.Key)
		walk(n.left)
		walk(n.right)
	}
	walk(t.root)
	return keys
}

func TestTree_InsertInOrderDump(t *testing.T) {
	tree := New[int, int]()
	tree.Insert(Pair[int, int]{2, 2})
	tree.Insert(Pair[int, int]{4, 1})
	it, inserted := tree.Insert(Pair[int, int]{3, 3})
	require.True(t, inserted)
	require.Equal(t, 3, it.Key())

	require.Equal(t, "(2,2) (3,3) (4,1)", tree.String())
	require.Equal(t, 3, tree.Len())
	require.NoError(t, tree.Check())

	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))
	require.Equal(t, "(key, value)\n(2,2) (3,3) (4,1)\nroot: 2 nodes: 3\n", buf.String())
}

func TestTree_InsertDuplicate(t *testing.T) {
	tree := New[int, int]()
	tree.Emplace(2, 2)
	tree.Emplace(1, 1)
	before := shape(tree)

	it, inserted := tree.Emplace(2, 99)
	require.False(t, inserted)
	require.Equal(t, 2, it.Key())
	require.Equal(t, 2, it.Value())
	require.Equal(t, 2, tree.Len())
	require.Equal(t, before, shape(tree))
}

func TestTree_Empty(t *testing.T) {
	tree := New[string, int]()
	require.True(t, tree.Empty())
	require.True(t, tree.Begin().Equal(tree.End()))
	require.True(t, tree.Find("x").AtEnd())
	require.True(t, tree.Root().AtEnd())
	require.Equal(t, 0, tree.Height())
	require.Equal(t, "", tree.String())
	require.NoError(t, tree.Check())

	var buf bytes.Buffer
	require.NoError(t, tree.Dump(&buf))
	require.Equal(t, "(key, value)\n\nroot: <nil> nodes: 0\n", buf.String())
}

func TestNewPair(t *testing.T) {
	tree := NewPair(1, 19.0)
	tree.Emplace(2, 2)
	require.Equal(t, "(1,19) (2,2)", tree.String())
	require.True(t, tree.Root().IsRoot())
	require.Equal(t, 1, tree.Root().Key())
}

func TestFromPairs_Unsorted(t *testing.T) {
	in := []Pair[int, int]{{3, 4}, {1, 2}, {5, 0}}
	orig := slices.Clone(in)
	tree := FromPairs(in)

	require.Equal(t, "(1,2) (3,4) (5,0)", tree.String())
	require.LessOrEqual(t, tree.Height(), 2)
	require.Equal(t, 3, tree.Root().Key())
	require.Equal(t, orig, in, "input must not be reordered")
	require.NoError(t, tree.Check())
}

func TestFromPairs_DuplicateKeepsFirst(t *testing.T) {
	tree := FromPairs([]Pair[int, string]{{2, "a"}, {1, "x"}, {2, "b"}})
	require.Equal(t, 2, tree.Len())
	v, ok := tree.Get(2)
	require.True(t, ok)
	require.Equal(t, "a", v)
}

func TestFromPairs_Empty(t *testing.T) {
	tree := FromPairs[int, int](nil)
	require.True(t, tree.Empty())
	require.NoError(t, tree.Check())
}

func TestTree_EraseLeafLeavesOthersAlone(t *testing.T) {
	tree := FromPairs(pairsOf(1, 3, 5))
	root := tree.Root()
	require.Equal(t, 3, root.Key())
	one, five := tree.Find(1), tree.Find(5)
	require.True(t, one.IsLeaf())

	require.True(t, tree.Erase(1))

	require.Equal(t, "(3,30) (5,50)", tree.String())
	require.True(t, tree.Root().Equal(root))
	require.Equal(t, 50, five.Value())
	require.False(t, root.HasLeftChild())
	require.True(t, root.HasRightChild())
	require.True(t, five.IsRightChild())
	require.PanicsWithValue(t, ErrStaleIterator, func() { one.Key() })
	require.NoError(t, tree.Check())
}

func TestTree_EraseRightLeaf(t *testing.T) {
	tree := New[int, int]()
	for _, k := range []int{2, 1, 3} {
		tree.Emplace(k, k)
	}
	left := tree.Find(1)

	require.True(t, tree.Erase(3))
	require.Equal(t, []int{2, 1}, shape(tree))
	require.Equal(t, 1, left.Key())
	require.NoError(t, tree.Check())
}

func TestTree_EraseRootLeaf(t *testing.T) {
	tree := NewPair(1, 1)
	require.True(t, tree.Erase(1))
	require.True(t, tree.Empty())
	require.Equal(t, 0, tree.Len())
	require.True(t, tree.Begin().AtEnd())
}

func TestTree_EraseMissing(t *testing.T) {
	tree := FromPairs(pairsOf(1, 2, 3))
	before := shape(tree)
	require.False(t, tree.Erase(7))
	require.Equal(t, 3, tree.Len())
	require.Equal(t, before, shape(tree))
}

func TestTree_EraseInternalRebuilds(t *testing.T) {
	tree := FromPairs(rangePairs(1, 7))
	two := tree.Find(2)
	require.Equal(t, 4, tree.Root().Key())

	require.True(t, tree.Erase(4))

	require.Equal(t, []int{1, 2, 3, 5, 6, 7}, slices.Collect(tree.Keys()))
	require.Equal(t, 6, tree.Len())
	require.Equal(t, 3, tree.Height())
	require.NoError(t, tree.Check())
	require.PanicsWithValue(t, ErrStaleIterator, func() { two.Key() })
}

func TestTree_EraseInternalOfChain(t *testing.T) {
	tree := New[int, int]()
	for k := 1; k <= 5; k++ {
		tree.Emplace(k, k)
	}
	require.Equal(t, 5, tree.Height())

	require.True(t, tree.Erase(3))
	require.Equal(t, []int{1, 2, 4, 5}, slices.Collect(tree.Keys()))
	require.Equal(t, 3, tree.Height())
	require.NoError(t, tree.Check())
}

func TestTree_Balance(t *testing.T) {
	tree := New[int, int]()
	for _, p := range rangePairs(1, 15) {
		tree.Insert(p)
	}
	require.Equal(t, 15, tree.Height())

	tree.Balance()
	require.Equal(t, 4, tree.Height())
	require.Equal(t, 15, tree.Len())
	require.Equal(t, rangePairs(1, 15), tree.Pairs())
	require.NoError(t, tree.Check())
}

func TestTree_BalanceDoesNotGrowBuiltTree(t *testing.T) {
	tree := FromPairs(rangePairs(1, 15))
	h := tree.Height()
	tree.Balance()
	require.LessOrEqual(t, tree.Height(), h)
	require.Equal(t, 8, tree.Root().Key())
}

func TestTree_BalanceEmpty(t *testing.T) {
	tree := New[int, int]()
	tree.Balance()
	require.True(t, tree.Empty())
}

func TestTree_BalanceInvalidatesIterators(t *testing.T) {
	tree := FromPairs(pairsOf(1, 2, 3))
	it := tree.Find(1)
	tree.Balance()
	require.PanicsWithValue(t, ErrStaleIterator, func() { it.Key() })
	require.Equal(t, 1, tree.Find(1).Key())
}

func TestTree_At(t *testing.T) {
	tree := New[string, int]()
	*tree.At("a") += 1
	*tree.At("a") += 1
	v, ok := tree.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)

	require.Equal(t, 0, *tree.At("b"))
	require.Equal(t, 2, tree.Len())
	require.True(t, tree.Contains("b"))
}

func TestTree_LowerBound(t *testing.T) {
	tree := FromPairs(pairsOf(10, 20, 30))
	require.Equal(t, 10, tree.LowerBound(0).Key())
	require.Equal(t, 20, tree.LowerBound(15).Key())
	require.Equal(t, 30, tree.LowerBound(30).Key())
	require.True(t, tree.LowerBound(31).AtEnd())
}

func TestTree_AllStopsEarly(t *testing.T) {
	tree := FromPairs(rangePairs(1, 10))
	var seen []int
	for k, v := range tree.All() {
		require.Equal(t, k*10, v)
		seen = append(seen, k)
		if k == 3 {
			break
		}
	}
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestTree_Clone(t *testing.T) {
	tree := FromPairs(rangePairs(1, 7))
	tree.Emplace(8, 80)
	c := tree.Clone()

	require.NoError(t, c.Check())
	require.Equal(t, shape(tree), shape(c))
	if d := cmp.Diff(tree.Pairs(), c.Pairs()); d != "" {
		t.Errorf("clone differs (-orig +clone):\n%s", d)
	}
	require.NotSame(t, tree.root, c.root)
	require.Same(t, c.root, c.root.left.parent)

	c.Erase(8)
	c.Find(1).SetValue(-1)
	require.Equal(t, 8, tree.Len())
	v, _ := tree.Get(1)
	require.Equal(t, 10, v)
}

func TestTree_CopyFrom(t *testing.T) {
	src := FromPairs(pairsOf(1, 2, 3))
	dst := FromPairs(pairsOf(7, 8))
	old := dst.Begin()

	dst.CopyFrom(src)
	require.Equal(t, src.Pairs(), dst.Pairs())
	require.Equal(t, shape(src), shape(dst))
	require.PanicsWithValue(t, ErrStaleIterator, func() { old.Key() })

	dst.CopyFrom(dst)
	require.Equal(t, 3, dst.Len())
}

func TestTree_Move(t *testing.T) {
	src := FromPairs(pairsOf(1, 2, 3))
	it := src.Begin()
	keep := shape(src)

	m := src.Move()
	require.True(t, src.Empty())
	require.Equal(t, 0, src.Len())
	require.Equal(t, keep, shape(m))
	require.Equal(t, 3, m.Len())
	require.PanicsWithValue(t, ErrStaleIterator, func() { it.Key() })

	dst := FromPairs(pairsOf(9))
	dst.MoveFrom(m)
	require.True(t, m.Empty())
	require.Equal(t, keep, shape(dst))
	require.NoError(t, dst.Check())
}

func TestTree_CustomComparator(t *testing.T) {
	greater := func(a, b int) bool { return a > b }
	tree := NewFunc[int, string](greater)
	for _, k := range []int{5, 3, 8, 1, 4, 9, 7} {
		tree.Emplace(k, "")
	}
	require.Equal(t, []int{9, 8, 7, 5, 4, 3, 1}, slices.Collect(tree.Keys()))
	require.NoError(t, tree.Check())

	built := FromPairsFunc([]Pair[int, string]{{1, "a"}, {3, "c"}, {2, "b"}}, greater)
	require.Equal(t, "(3,c) (2,b) (1,a)", built.String())
}

func TestTree_UUIDKeys(t *testing.T) {
	tree := New[string, int]()
	var keys []string
	for i := 0; i < 200; i++ {
		id, err := uuid.GenerateUUID()
		require.NoError(t, err)
		keys = append(keys, id)
		_, inserted := tree.Emplace(id, i)
		require.True(t, inserted)
	}
	slices.Sort(keys)
	require.Equal(t, keys, slices.Collect(tree.Keys()))

	tree.Balance()
	require.LessOrEqual(t, tree.Height(), 8)
	require.NoError(t, tree.Check())
}

func TestTree_Check(t *testing.T) {
	tree := FromPairs(rangePairs(1, 3))
	tree.root.left.parent = nil
	require.ErrorIs(t, tree.Check(), ErrCorrupt)

	tree = FromPairs(rangePairs(1, 3))
	tree.root.left.pair.Key = 100
	require.ErrorIs(t, tree.Check(), ErrCorrupt)

	tree = FromPairs(rangePairs(1, 3))
	tree.count = 4
	require.ErrorIs(t, tree.Check(), ErrCorrupt)
}

func TestTree_Print(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FromPairs(pairsOf(1, 2, 3)).Print(&buf))
	want := "       /------+ 3 → 30 ^2\n" +
		"|------+ 2 → 20 ^<nil>\n" +
		"       \\------+ 1 → 10 ^2\n"
	require.Equal(t, want, buf.String())
}

// Any sequence of inserts, erases and rebuilds keeps the keys sorted
// and unique and leaves a consistent tree.
func TestTree_OrderProperty(t *testing.T) {
	f := func(ins []int16, del []int16, balance bool) bool {
		tree := New[int16, int]()
		want := make(map[int16]int)
		for i, k := range ins {
			if _, ok := tree.Emplace(k, i); ok {
				want[k] = i
			}
		}
		if balance {
			tree.Balance()
		}
		for _, k := range del {
			_, had := want[k]
			if tree.Erase(k) != had {
				return false
			}
			delete(want, k)
		}
		if tree.Check() != nil || tree.Len() != len(want) {
			return false
		}
		got := maps.Collect(tree.All())
		return slices.Equal(slices.Sorted(maps.Keys(want)), slices.Collect(tree.Keys())) &&
			maps.Equal(want, got)
	}
	require.NoError(t, quick.Check(f, nil))
}
