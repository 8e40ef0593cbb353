// Package treemapindex is the ordered map reference: the red-black
// tree map from gods, the closest relative of a standard ordered map.
package treemapindex

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	"github.com/bstmap-bench/bmark/index"
)

var _ index.Index = (*TreeMapIndex)(nil)

type TreeMapIndex struct {
	m *treemap.Map
}

func New() *TreeMapIndex {
	return &TreeMapIndex{m: treemap.NewWith(utils.Int64Comparator)}
}

func (t *TreeMapIndex) Load(entries []index.Entry) error {
	t.m.Clear()
	for _, e := range entries {
		if _, found := t.m.Get(e.Key); !found {
			t.m.Put(e.Key, e.Value)
		}
	}
	return nil
}

func (t *TreeMapIndex) Insert(key int64, value float64) error {
	t.m.Put(key, value)
	return nil
}

func (t *TreeMapIndex) Get(key int64) (float64, error) {
	v, found := t.m.Get(key)
	if !found {
		return 0, index.ErrNotFound
	}
	return v.(float64), nil
}

func (t *TreeMapIndex) Delete(key int64) error {
	if _, found := t.m.Get(key); !found {
		return index.ErrNotFound
	}
	t.m.Remove(key)
	return nil
}

func (t *TreeMapIndex) Range(start, end int64) (index.Iterator, error) {
	var out []index.Entry
	it := t.m.Iterator()
	for it.Next() {
		k := it.Key().(int64)
		if k < start {
			continue
		}
		if k > end {
			break
		}
		out = append(out, index.Entry{Key: k, Value: it.Value().(float64)})
	}
	return index.NewSliceIterator(out), nil
}

func (t *TreeMapIndex) Len() int     { return t.m.Size() }
func (t *TreeMapIndex) Close() error { return nil }
