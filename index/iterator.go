package index

// Iterator allows scanning over a range of key-value pairs.
type Iterator interface {
	Next() bool
	Key() int64
	Value() float64
	Error() error
	Close() error
}

// SliceIterator walks entries that were collected up front.
type SliceIterator struct {
	data []Entry
	idx  int
}

// NewSliceIterator returns an iterator over entries, which must
// already be in ascending key order.
func NewSliceIterator(entries []Entry) *SliceIterator {
	return &SliceIterator{data: entries, idx: -1}
}

func (it *SliceIterator) Next() bool     { it.idx++; return it.idx < len(it.data) }
func (it *SliceIterator) Key() int64     { return it.data[it.idx].Key }
func (it *SliceIterator) Value() float64 { return it.data[it.idx].Value }
func (it *SliceIterator) Error() error   { return nil }
func (it *SliceIterator) Close() error   { return nil }

// Collect drains it into a slice and closes it.
func Collect(it Iterator) ([]Entry, error) {
	var out []Entry
	for it.Next() {
		out = append(out, Entry{Key: it.Key(), Value: it.Value()})
	}
	if err := it.Error(); err != nil {
		it.Close()
		return out, err
	}
	return out, it.Close()
}
