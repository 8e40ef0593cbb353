// Package btreeindex serves the index contract from google/btree's
// generic in-memory B-tree.
package btreeindex

import (
	"github.com/google/btree"

	"github.com/bstmap-bench/bmark/index"
)

// DefaultDegree matches the degree google/btree's own benchmarks use.
const DefaultDegree = 32

var _ index.Index = (*BTreeIndex)(nil)

type BTreeIndex struct {
	degree int
	tree   *btree.BTreeG[index.Entry]
}

func less(a, b index.Entry) bool { return a.Key < b.Key }

// New returns an empty B-tree of the given degree. A degree below 2 falls
// back to DefaultDegree.
func New(degree int) *BTreeIndex {
	if degree < 2 {
		degree = DefaultDegree
	}
	return &BTreeIndex{degree: degree, tree: btree.NewG[index.Entry](degree, less)}
}

func (b *BTreeIndex) Degree() int { return b.degree }

func (b *BTreeIndex) Load(entries []index.Entry) error {
	b.tree.Clear(false)
	for _, e := range entries {
		if _, found := b.tree.Get(e); !found {
			b.tree.ReplaceOrInsert(e)
		}
	}
	return nil
}

func (b *BTreeIndex) Insert(key int64, value float64) error {
	b.tree.ReplaceOrInsert(index.Entry{Key: key, Value: value})
	return nil
}

func (b *BTreeIndex) Get(key int64) (float64, error) {
	e, found := b.tree.Get(index.Entry{Key: key})
	if !found {
		return 0, index.ErrNotFound
	}
	return e.Value, nil
}

func (b *BTreeIndex) Delete(key int64) error {
	if _, found := b.tree.Delete(index.Entry{Key: key}); !found {
		return index.ErrNotFound
	}
	return nil
}

func (b *BTreeIndex) Range(start, end int64) (index.Iterator, error) {
	var out []index.Entry
	b.tree.AscendGreaterOrEqual(index.Entry{Key: start}, func(e index.Entry) bool {
		if e.Key > end {
			return false
		}
		out = append(out, e)
		return true
	})
	return index.NewSliceIterator(out), nil
}

func (b *BTreeIndex) Len() int     { return b.tree.Len() }
func (b *BTreeIndex) Close() error { return nil }
