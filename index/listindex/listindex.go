// Package listindex is the linear-scan baseline: an unordered slice
// searched front to back.
package listindex

import (
	"slices"

	"github.com/bstmap-bench/bmark/index"
)

var _ index.Index = (*ListIndex)(nil)

type ListIndex struct {
	Data []index.Entry
}

func NewListIndex() *ListIndex {
	return &ListIndex{
		Data: make([]index.Entry, 0),
	}
}

func (l *ListIndex) find(key int64) int {
	return slices.IndexFunc(l.Data, func(e index.Entry) bool { return e.Key == key })
}

func (l *ListIndex) Load(entries []index.Entry) error {
	l.Data = make([]index.Entry, 0, len(entries))
	for _, e := range entries {
		if l.find(e.Key) < 0 {
			l.Data = append(l.Data, e)
		}
	}
	return nil
}

func (l *ListIndex) Insert(key int64, value float64) error {
	if i := l.find(key); i >= 0 {
		l.Data[i].Value = value
		return nil
	}
	l.Data = append(l.Data, index.Entry{Key: key, Value: value})
	return nil
}

func (l *ListIndex) Get(key int64) (float64, error) {
	i := l.find(key)
	if i < 0 {
		return 0, index.ErrNotFound
	}
	return l.Data[i].Value, nil
}

func (l *ListIndex) Delete(key int64) error {
	i := l.find(key)
	if i < 0 {
		return index.ErrNotFound
	}
	l.Data = slices.Delete(l.Data, i, i+1)
	return nil
}

// Range filters then sorts, since Data keeps insertion order.
func (l *ListIndex) Range(start, end int64) (index.Iterator, error) {
	var out []index.Entry
	for _, e := range l.Data {
		if e.Key >= start && e.Key <= end {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b index.Entry) int {
		if a.Key < b.Key {
			return -1
		}
		return 1
	})
	return index.NewSliceIterator(out), nil
}

func (l *ListIndex) Len() int     { return len(l.Data) }
func (l *ListIndex) Close() error { return nil }
