// Package lsm wraps Pebble (CockroachDB's LSM storage engine) behind the
// common Index interface. The store lives on Pebble's in-memory
// filesystem so it is measured on the same footing as the other
// in-memory structures.
package lsm

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"

	"github.com/bstmap-bench/bmark/index"
)

var _ index.Index = (*LSM)(nil)

type LSM struct {
	db    *pebble.DB
	count int
}

func options() *pebble.Options {
	return &pebble.Options{
		FS:                          vfs.NewMem(),
		MemTableSize:                16 << 20,
		MemTableStopWritesThreshold: 4,
		L0CompactionThreshold:       4,
		L0StopWritesThreshold:       12,
	}
}

// Open creates an empty Pebble database on a fresh in-memory filesystem.
func Open() (*LSM, error) {
	db, err := pebble.Open("", options())
	if err != nil {
		return nil, errors.Wrap(err, "lsm: open")
	}
	return &LSM{db: db}, nil
}

// Close shuts down Pebble, dropping the in-memory state.
func (l *LSM) Close() error {
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return errors.Wrap(err, "lsm: close")
}

// Load replaces the store with entries, written as a single batch.
func (l *LSM) Load(entries []index.Entry) error {
	if err := l.Close(); err != nil {
		return err
	}
	fresh, err := Open()
	if err != nil {
		return err
	}
	*l = *fresh

	seen := make(map[int64]struct{}, len(entries))
	b := l.db.NewBatch()
	defer b.Close()
	for _, e := range entries {
		if _, dup := seen[e.Key]; dup {
			continue
		}
		seen[e.Key] = struct{}{}
		if err := b.Set(encodeKey(e.Key), encodeValue(e.Value), nil); err != nil {
			return errors.Wrap(err, "lsm: load")
		}
	}
	if err := b.Commit(pebble.NoSync); err != nil {
		return errors.Wrap(err, "lsm: load")
	}
	l.count = len(seen)
	return nil
}

func (l *LSM) has(key int64) (bool, error) {
	_, closer, err := l.db.Get(encodeKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, closer.Close()
}

// Insert inserts or updates the value for key.
func (l *LSM) Insert(key int64, value float64) error {
	found, err := l.has(key)
	if err != nil {
		return errors.Wrap(err, "lsm: insert")
	}
	if err := l.db.Set(encodeKey(key), encodeValue(value), pebble.NoSync); err != nil {
		return errors.Wrap(err, "lsm: insert")
	}
	if !found {
		l.count++
	}
	return nil
}

func (l *LSM) Get(key int64) (float64, error) {
	val, closer, err := l.db.Get(encodeKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return 0, index.ErrNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "lsm: get")
	}
	defer closer.Close()
	if len(val) != 8 {
		return 0, errors.Newf("lsm: unexpected value length %d", len(val))
	}
	return decodeValue(val), nil
}

// Delete removes the key from the store.
func (l *LSM) Delete(key int64) error {
	found, err := l.has(key)
	if err != nil {
		return errors.Wrap(err, "lsm: delete")
	}
	if !found {
		return index.ErrNotFound
	}
	if err := l.db.Delete(encodeKey(key), pebble.NoSync); err != nil {
		return errors.Wrap(err, "lsm: delete")
	}
	l.count--
	return nil
}

// Range returns an iterator over all keys in [start, end] inclusive.
func (l *LSM) Range(start, end int64) (index.Iterator, error) {
	opts := &pebble.IterOptions{LowerBound: encodeKey(start)}
	// Pebble's UpperBound is exclusive; past MaxInt64 there is nothing to bound.
	if end < math.MaxInt64 {
		opts.UpperBound = encodeKey(end + 1)
	}
	iter, err := l.db.NewIter(opts)
	if err != nil {
		return nil, errors.Wrap(err, "lsm: range")
	}
	iter.First()
	return &rangeIterator{iter: iter, first: true}, nil
}

func (l *LSM) Len() int { return l.count }

// encodeKey writes k big-endian with the sign bit flipped, so byte order
// matches signed order for negative keys too.
func encodeKey(k int64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(k)^(1<<63))
	return b
}

func decodeKey(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}

func encodeValue(v float64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
	return b
}

func decodeValue(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

type rangeIterator struct {
	iter  *pebble.Iterator
	first bool
	key   int64
	val   float64
	err   error
}

func (it *rangeIterator) Next() bool {
	var valid bool
	if it.first {
		// First() was already called in Range.
		it.first = false
		valid = it.iter.Valid()
	} else {
		valid = it.iter.Next()
	}
	if !valid {
		return false
	}
	k, v := it.iter.Key(), it.iter.Value()
	if len(k) != 8 || len(v) != 8 {
		it.err = errors.Newf("lsm: unexpected entry size %d/%d", len(k), len(v))
		return false
	}
	it.key = decodeKey(k)
	it.val = decodeValue(v)
	return true
}

func (it *rangeIterator) Key() int64     { return it.key }
func (it *rangeIterator) Value() float64 { return it.val }

func (it *rangeIterator) Error() error {
	if it.err != nil {
		return it.err
	}
	return it.iter.Error()
}

func (it *rangeIterator) Close() error { return it.iter.Close() }
