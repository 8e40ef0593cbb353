package bst

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// LessFunc is a strict total order over keys. Keys a and b are the
// same key when neither is less than the other.
type LessFunc[K any] func(a, b K) bool

// Tree - holds the comparator and the root node of a tree
type Tree[K, V any] struct {
	less  LessFunc[K]
	root  *node[K, V]
	count int
	epoch uint64 // bumped whenever the node graph is released
}

func ordered[K constraints.Ordered](a, b K) bool {
	return a < b
}

// New - create an empty tree ordered by <
func New[K constraints.Ordered, V any]() *Tree[K, V] {
	return NewFunc[K, V](ordered[K])
}

// NewFunc - create an empty tree ordered by less
func NewFunc[K, V any](less LessFunc[K]) *Tree[K, V] {
	return &Tree[K, V]{less: less}
}

// NewPair - create a tree holding a single pair, ordered by <
func NewPair[K constraints.Ordered, V any](key K, value V) *Tree[K, V] {
	return NewPairFunc(key, value, ordered[K])
}

// NewPairFunc - create a tree holding a single pair, ordered by less
func NewPairFunc[K, V any](key K, value V, less LessFunc[K]) *Tree[K, V] {
	t := NewFunc[K, V](less)
	t.root = &node[K, V]{pair: Pair[K, V]{Key: key, Value: value}}
	t.count = 1
	return t
}

// FromPairs - build a balanced tree from pairs in any order, ordered
// by <. See FromPairsFunc.
func FromPairs[K constraints.Ordered, V any](pairs []Pair[K, V]) *Tree[K, V] {
	return FromPairsFunc(pairs, ordered[K])
}

// FromPairsFunc - build a balanced tree from pairs in any order. The
// pairs are copied and sorted by key; when a key repeats, its first
// occurrence in pairs is kept.
func FromPairsFunc[K, V any](pairs []Pair[K, V], less LessFunc[K]) *Tree[K, V] {
	t := NewFunc[K, V](less)
	sorted := slices.Clone(pairs)
	slices.SortStableFunc(sorted, t.compare)
	sorted = slices.CompactFunc(sorted, func(a, b Pair[K, V]) bool {
		return t.compare(a, b) == 0
	})
	t.rebuild(sorted)
	return t
}

func (t *Tree[K, V]) compare(a, b Pair[K, V]) int {
	switch {
	case t.less(a.Key, b.Key):
		return -1
	case t.less(b.Key, a.Key):
		return 1
	}
	return 0
}

// Len - number of pairs in the tree
func (t *Tree[K, V]) Len() int {
	return t.count
}

// Empty - true if the tree holds no pairs
func (t *Tree[K, V]) Empty() bool {
	return t.root == nil
}

// Height - number of levels, 0 for an empty tree
func (t *Tree[K, V]) Height() int {
	return t.root.height()
}

// Root - iterator on the root node, or End for an empty tree
func (t *Tree[K, V]) Root() Iterator[K, V] {
	return t.iter(t.root)
}

// Begin - iterator on the lowest key
func (t *Tree[K, V]) Begin() Iterator[K, V] {
	return t.iter(t.root.first())
}

// End - the position past the highest key
func (t *Tree[K, V]) End() Iterator[K, V] {
	return t.iter(nil)
}

// Insert adds p unless its key is already present. It returns an
// iterator on the stored pair for that key and whether p was added; an
// existing pair is left untouched.
func (t *Tree[K, V]) Insert(p Pair[K, V]) (Iterator[K, V], bool) {
	if t.root == nil {
		t.root = &node[K, V]{pair: p}
		t.count++
		return t.iter(t.root), true
	}

	// descent ends at the node missing the child the key needs, since
	// keys are unique
	cur := t.root
	for {
		switch {
		case t.less(p.Key, cur.pair.Key):
			if cur.left == nil {
				cur.left = &node[K, V]{pair: p, parent: cur}
				t.count++
				return t.iter(cur.left), true
			}
			cur = cur.left
		case t.less(cur.pair.Key, p.Key):
			if cur.right == nil {
				cur.right = &node[K, V]{pair: p, parent: cur}
				t.count++
				return t.iter(cur.right), true
			}
			cur = cur.right
		default:
			return t.iter(cur), false
		}
	}
}

// Emplace is Insert of the pair (key, value).
func (t *Tree[K, V]) Emplace(key K, value V) (Iterator[K, V], bool) {
	return t.Insert(Pair[K, V]{Key: key, Value: value})
}

// internal: node holding key or nil
func (t *Tree[K, V]) search(key K) *node[K, V] {
	cur := t.root
	for cur != nil {
		switch {
		case t.less(key, cur.pair.Key):
			cur = cur.left
		case t.less(cur.pair.Key, key):
			cur = cur.right
		default:
			return cur
		}
	}
	return nil
}

// Find - iterator on key, or End if the key is absent
func (t *Tree[K, V]) Find(key K) Iterator[K, V] {
	return t.iter(t.search(key))
}

// LowerBound - iterator on the lowest key not less than key, or End
func (t *Tree[K, V]) LowerBound(key K) Iterator[K, V] {
	var found *node[K, V]
	for cur := t.root; cur != nil; {
		if t.less(cur.pair.Key, key) {
			cur = cur.right
		} else {
			found = cur
			cur = cur.left
		}
	}
	return t.iter(found)
}

// Contains - true if key is present
func (t *Tree[K, V]) Contains(key K) bool {
	return t.search(key) != nil
}

// Get - the value stored for key, and whether it was found
func (t *Tree[K, V]) Get(key K) (V, bool) {
	if n := t.search(key); n != nil {
		return n.pair.Value, true
	}
	var zero V
	return zero, false
}

// At returns a pointer to the value stored for key, first inserting
// the zero value if the key is absent. The pointer is valid until the
// pair is erased or the tree is rebuilt.
func (t *Tree[K, V]) At(key K) *V {
	n := t.search(key)
	if n == nil {
		it, _ := t.Insert(Pair[K, V]{Key: key})
		n = it.cur
	}
	return &n.pair.Value
}

// Erase removes key and reports whether it was present.
//
// A leaf is unlinked from its parent and nothing else moves. A node
// with children is not spliced out: the remaining pairs are collected
// in order and the whole tree is rebuilt balanced, which invalidates
// every iterator.
func (t *Tree[K, V]) Erase(key K) bool {
	n := t.search(key)
	if n == nil {
		return false
	}

	if n.isLeaf() {
		switch {
		case n.parent == nil:
			t.root = nil
		case n.isLeftChild():
			n.parent.left = nil
		default:
			n.parent.right = nil
		}
		n.parent = nil
		n.detached = true
		t.count--
		return true
	}

	rest := make([]Pair[K, V], 0, t.count-1)
	for it := t.Begin(); !it.AtEnd(); it.Next() {
		if it.cur != n {
			rest = append(rest, it.cur.pair)
		}
	}
	t.rebuild(rest)
	return true
}

// Clear - release every node
func (t *Tree[K, V]) Clear() {
	t.root = nil
	t.count = 0
	t.epoch++
}

// Balance rebuilds the tree with minimal height. The pairs are read
// in order, so they are already sorted for the median-split build.
func (t *Tree[K, V]) Balance() {
	if t.root == nil {
		return
	}
	t.rebuild(t.Pairs())
}

// rebuild replaces the node graph with one built from sorted, which
// must be in key order without repeats.
func (t *Tree[K, V]) rebuild(sorted []Pair[K, V]) {
	t.Clear()
	t.root = buildRange(sorted, 0, len(sorted)-1, nil)
	t.count = len(sorted)
}

// Pairs - copy of every pair in key order
func (t *Tree[K, V]) Pairs() []Pair[K, V] {
	pairs := make([]Pair[K, V], 0, t.count)
	for it := t.Begin(); !it.AtEnd(); it.Next() {
		pairs = append(pairs, it.cur.pair)
	}
	return pairs
}

// All - key/value sequence in key order, for use with range
func (t *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := t.Begin(); !it.AtEnd(); it.Next() {
			if !yield(it.cur.pair.Key, it.cur.pair.Value) {
				return
			}
		}
	}
}

// Keys - key sequence in key order
func (t *Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone - deep copy preserving the shape of the tree
func (t *Tree[K, V]) Clone() *Tree[K, V] {
	return &Tree[K, V]{
		less:  t.less,
		root:  t.root.clone(nil),
		count: t.count,
	}
}

// CopyFrom drops the current nodes then makes t a deep copy of src.
func (t *Tree[K, V]) CopyFrom(src *Tree[K, V]) {
	if t == src {
		return
	}
	t.Clear()
	t.less = src.less
	t.root = src.root.clone(nil)
	t.count = src.count
}

// Move hands the nodes of t to a new tree and leaves t empty.
func (t *Tree[K, V]) Move() *Tree[K, V] {
	m := NewFunc[K, V](t.less)
	m.MoveFrom(t)
	return m
}

// MoveFrom drops the current nodes and takes the nodes and comparator
// of src, leaving src empty. Iterators into src become stale.
func (t *Tree[K, V]) MoveFrom(src *Tree[K, V]) {
	if t == src {
		return
	}
	root, count := src.root, src.count
	src.Clear()
	t.Clear()
	t.less = src.less
	t.root, t.count = root, count
}
