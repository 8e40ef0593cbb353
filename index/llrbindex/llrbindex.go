// Package llrbindex serves the index contract from GoLLRB's left-leaning
// red-black tree, the self-balancing counterpart of package bst.
package llrbindex

import (
	"github.com/petar/GoLLRB/llrb"

	"github.com/bstmap-bench/bmark/index"
)

var _ index.Index = (*LLRBIndex)(nil)

type item index.Entry

func (i item) Less(than llrb.Item) bool { return i.Key < than.(item).Key }

type LLRBIndex struct {
	tree *llrb.LLRB
}

func New() *LLRBIndex {
	return &LLRBIndex{tree: llrb.New()}
}

func (l *LLRBIndex) Load(entries []index.Entry) error {
	l.tree = llrb.New()
	for _, e := range entries {
		if !l.tree.Has(item(e)) {
			l.tree.ReplaceOrInsert(item(e))
		}
	}
	return nil
}

func (l *LLRBIndex) Insert(key int64, value float64) error {
	l.tree.ReplaceOrInsert(item{Key: key, Value: value})
	return nil
}

func (l *LLRBIndex) Get(key int64) (float64, error) {
	got := l.tree.Get(item{Key: key})
	if got == nil {
		return 0, index.ErrNotFound
	}
	return got.(item).Value, nil
}

func (l *LLRBIndex) Delete(key int64) error {
	if l.tree.Delete(item{Key: key}) == nil {
		return index.ErrNotFound
	}
	return nil
}

func (l *LLRBIndex) Range(start, end int64) (index.Iterator, error) {
	var out []index.Entry
	l.tree.AscendGreaterOrEqual(item{Key: start}, func(i llrb.Item) bool {
		e := i.(item)
		if e.Key > end {
			return false
		}
		out = append(out, index.Entry(e))
		return true
	})
	return index.NewSliceIterator(out), nil
}

func (l *LLRBIndex) Len() int     { return l.tree.Len() }
func (l *LLRBIndex) Close() error { return nil }
