package bst

// Pair is a key with its associated value.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// node owns its left and right subtrees. parent is a back reference
// for upward traversal and erase bookkeeping only; it is updated
// whenever the node is relinked.
type node[K, V any] struct {
	pair        Pair[K, V]
	left, right *node[K, V]
	parent      *node[K, V]
	detached    bool // erased as a leaf while iterators may still hold it
}

// clone duplicates the subtree rooted at n. Each copy is linked to
// the parent passed in, never to n's parent.
func (n *node[K, V]) clone(parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	c := &node[K, V]{pair: n.pair, parent: parent}
	c.left = n.left.clone(c)
	c.right = n.right.clone(c)
	return c
}

// internal: lowest node in a sub-tree
func (n *node[K, V]) first() *node[K, V] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[K, V]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

func (n *node[K, V]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

func (n *node[K, V]) isRightChild() bool {
	return n.parent != nil && n.parent.right == n
}

// height counts the levels of the sub-tree, 0 for an empty one.
func (n *node[K, V]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// buildRange links sorted[start..end] (inclusive) into a sub-tree of
// minimal height under parent: the midpoint first, then each half.
// The shape is the one obtained by inserting the midpoints in that
// order.
func buildRange[K, V any](sorted []Pair[K, V], start, end int, parent *node[K, V]) *node[K, V] {
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	n := &node[K, V]{pair: sorted[mid], parent: parent}
	n.left = buildRange(sorted, start, mid-1, n)
	n.right = buildRange(sorted, mid+1, end, n)
	return n
}
