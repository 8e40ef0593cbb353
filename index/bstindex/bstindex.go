// Package bstindex serves the index contract from the unbalanced
// binary search tree in package bst.
package bstindex

import (
	"github.com/bstmap-bench/bmark/bst"
	"github.com/bstmap-bench/bmark/index"
)

var _ index.Index = (*BSTIndex)(nil)

type BSTIndex struct {
	tree *bst.Tree[int64, float64]
}

func New() *BSTIndex {
	return &BSTIndex{tree: bst.New[int64, float64]()}
}

// Tree exposes the underlying tree for diagnostics.
func (b *BSTIndex) Tree() *bst.Tree[int64, float64] { return b.tree }

// Load builds a balanced tree from entries and rebalances it once
// more before the timed lookups start.
func (b *BSTIndex) Load(entries []index.Entry) error {
	pairs := make([]bst.Pair[int64, float64], len(entries))
	for i, e := range entries {
		pairs[i] = bst.Pair[int64, float64]{Key: e.Key, Value: e.Value}
	}
	b.tree = bst.FromPairs(pairs)
	b.tree.Balance()
	return nil
}

func (b *BSTIndex) Insert(key int64, value float64) error {
	*b.tree.At(key) = value
	return nil
}

func (b *BSTIndex) Get(key int64) (float64, error) {
	it := b.tree.Find(key)
	if it.AtEnd() {
		return 0, index.ErrNotFound
	}
	return it.Value(), nil
}

func (b *BSTIndex) Delete(key int64) error {
	if !b.tree.Erase(key) {
		return index.ErrNotFound
	}
	return nil
}

// Balance rebuilds the tree with minimal height.
func (b *BSTIndex) Balance() { b.tree.Balance() }

func (b *BSTIndex) Range(start, end int64) (index.Iterator, error) {
	return &rangeIterator{it: b.tree.LowerBound(start), end: end, first: true}, nil
}

func (b *BSTIndex) Len() int     { return b.tree.Len() }
func (b *BSTIndex) Close() error { return nil }

// rangeIterator walks the tree lazily; the tree must not change while
// it is open.
type rangeIterator struct {
	it    bst.Iterator[int64, float64]
	end   int64
	first bool
}

func (r *rangeIterator) Next() bool {
	if r.first {
		r.first = false
	} else if !r.it.AtEnd() {
		r.it.Next()
	}
	return !r.it.AtEnd() && r.it.Key() <= r.end
}

func (r *rangeIterator) Key() int64     { return r.it.Key() }
func (r *rangeIterator) Value() float64 { return r.it.Value() }
func (r *rangeIterator) Error() error   { return nil }
func (r *rangeIterator) Close() error   { return nil }
