// Package mapindex is the hash map reference: Go's built-in map, with
// range scans sorted on demand.
package mapindex

import (
	"slices"

	"github.com/bstmap-bench/bmark/index"
)

var _ index.Index = (*MapIndex)(nil)

type MapIndex struct {
	data map[int64]float64
}

func New() *MapIndex {
	return &MapIndex{data: make(map[int64]float64)}
}

func (m *MapIndex) Load(entries []index.Entry) error {
	m.data = make(map[int64]float64, len(entries))
	for _, e := range entries {
		if _, ok := m.data[e.Key]; !ok {
			m.data[e.Key] = e.Value
		}
	}
	return nil
}

func (m *MapIndex) Insert(key int64, value float64) error {
	m.data[key] = value
	return nil
}

func (m *MapIndex) Get(key int64) (float64, error) {
	v, ok := m.data[key]
	if !ok {
		return 0, index.ErrNotFound
	}
	return v, nil
}

func (m *MapIndex) Delete(key int64) error {
	if _, ok := m.data[key]; !ok {
		return index.ErrNotFound
	}
	delete(m.data, key)
	return nil
}

func (m *MapIndex) Range(start, end int64) (index.Iterator, error) {
	var out []index.Entry
	for k, v := range m.data {
		if k >= start && k <= end {
			out = append(out, index.Entry{Key: k, Value: v})
		}
	}
	slices.SortFunc(out, func(a, b index.Entry) int {
		switch {
		case a.Key < b.Key:
			return -1
		case a.Key > b.Key:
			return 1
		}
		return 0
	})
	return index.NewSliceIterator(out), nil
}

func (m *MapIndex) Len() int     { return len(m.data) }
func (m *MapIndex) Close() error { return nil }
