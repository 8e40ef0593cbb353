package bst

import "github.com/cockroachdb/errors"

var (
	// ErrEndIterator is the panic value when an end iterator is
	// dereferenced.
	ErrEndIterator = errors.New("bst: dereference of end iterator")
	// ErrStaleIterator is the panic value when an iterator is used after
	// its node was erased or the tree was rebuilt, cleared or moved.
	ErrStaleIterator = errors.New("bst: iterator used after its tree was modified")
)

// Iterator is a forward cursor over the nodes of a Tree, in key order.
// The zero value, like Tree.End, is the end position.
type Iterator[K, V any] struct {
	cur   *node[K, V]
	tree  *Tree[K, V]
	epoch uint64
}

func (t *Tree[K, V]) iter(n *node[K, V]) Iterator[K, V] {
	return Iterator[K, V]{cur: n, tree: t, epoch: t.epoch}
}

// node returns the current node, panicking if there is none or if it
// no longer belongs to the tree.
func (it Iterator[K, V]) node() *node[K, V] {
	if it.cur == nil {
		panic(ErrEndIterator)
	}
	it.checkLive()
	return it.cur
}

func (it Iterator[K, V]) checkLive() {
	if it.cur != nil && (it.cur.detached || it.tree.epoch != it.epoch) {
		panic(ErrStaleIterator)
	}
}

// AtEnd is true when the iterator is past the last element.
func (it Iterator[K, V]) AtEnd() bool {
	return it.cur == nil
}

// Equal is true when both iterators are on the same node, or both are
// at the end.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.cur == other.cur
}

// Key of the current element.
func (it Iterator[K, V]) Key() K {
	return it.node().pair.Key
}

// Value of the current element.
func (it Iterator[K, V]) Value() V {
	return it.node().pair.Value
}

// SetValue overwrites the value stored in the current element.
func (it Iterator[K, V]) SetValue(v V) {
	it.node().pair.Value = v
}

// Pair returns a copy of the current element.
func (it Iterator[K, V]) Pair() Pair[K, V] {
	return it.node().pair
}

// Next moves to the element with the next higher key, or to the end.
//
//  1. With a right child: its leftmost descendant is next.
//  2. Otherwise climb while the node's key is greater than its
//     parent's; the first parent reached from the left is next. A
//     parentless node reached while still climbing means the start
//     was the maximum.
//  3. A root with no right child is the maximum.
func (it *Iterator[K, V]) Next() {
	if it.cur == nil {
		return
	}
	it.checkLive()

	n := it.cur
	if n.right != nil {
		it.cur = n.right.first()
		return
	}
	if n.parent == nil {
		it.cur = nil
		return
	}
	less := it.tree.less
	for less(n.parent.pair.Key, n.pair.Key) {
		n = n.parent
		if n.parent == nil {
			it.cur = nil
			return
		}
	}
	it.cur = n.parent
}

// HasLeftChild - true if the current node has a left sub-tree.
func (it Iterator[K, V]) HasLeftChild() bool {
	return it.cur != nil && it.node().left != nil
}

// HasRightChild - true if the current node has a right sub-tree.
func (it Iterator[K, V]) HasRightChild() bool {
	return it.cur != nil && it.node().right != nil
}

// IsLeaf - true if the current node has no children.
func (it Iterator[K, V]) IsLeaf() bool {
	return it.cur != nil && it.node().isLeaf()
}

// IsLeftChild - true if the current node hangs off its parent's left
// link. Decided by the links, not by comparing keys.
func (it Iterator[K, V]) IsLeftChild() bool {
	return it.cur != nil && it.node().isLeftChild()
}

// IsRightChild - true if the current node hangs off its parent's right
// link.
func (it Iterator[K, V]) IsRightChild() bool {
	return it.cur != nil && it.node().isRightChild()
}

// IsRoot - true if the current node has no parent.
func (it Iterator[K, V]) IsRoot() bool {
	return it.cur != nil && it.node().parent == nil
}
