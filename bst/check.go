package bst

import "github.com/cockroachdb/errors"

// ErrCorrupt is wrapped by every error returned from Check.
var ErrCorrupt = errors.New("bst: corrupt tree")

// Check walks the whole tree and returns an error describing the first
// broken invariant: key order, parent links, or the stored count.
func (t *Tree[K, V]) Check() error {
	if t.root != nil && t.root.parent != nil {
		return errors.Wrapf(ErrCorrupt, "root %v has a parent", t.root.pair.Key)
	}
	n, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if n != t.count {
		return errors.Wrapf(ErrCorrupt, "counted %d nodes, tree records %d", n, t.count)
	}
	return nil
}

// check verifies the sub-tree at n lies strictly between the keys of
// lo and hi (nil for unbounded) and returns its node count.
func (t *Tree[K, V]) check(n, lo, hi *node[K, V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.detached {
		return 0, errors.Wrapf(ErrCorrupt, "erased node %v still linked", n.pair.Key)
	}
	if lo != nil && !t.less(lo.pair.Key, n.pair.Key) {
		return 0, errors.Wrapf(ErrCorrupt, "key %v not greater than %v", n.pair.Key, lo.pair.Key)
	}
	if hi != nil && !t.less(n.pair.Key, hi.pair.Key) {
		return 0, errors.Wrapf(ErrCorrupt, "key %v not less than %v", n.pair.Key, hi.pair.Key)
	}
	for _, c := range []*node[K, V]{n.left, n.right} {
		if c != nil && c.parent != n {
			return 0, errors.Wrapf(ErrCorrupt, "node %v does not point back to parent %v", c.pair.Key, n.pair.Key)
		}
	}
	l, err := t.check(n.left, lo, n)
	if err != nil {
		return 0, err
	}
	r, err := t.check(n.right, n, hi)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}
