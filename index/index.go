// Package index defines the contract shared by every structure the
// benchmark measures, the core tree included.
package index

import "github.com/cockroachdb/errors"

// ErrNotFound is returned by Get and Delete for an absent key.
var ErrNotFound = errors.New("key not found")

// Entry is one key/value pair as loaded into an index.
type Entry struct {
	Key   int64
	Value float64
}

// Index is the common interface for all implementations.
type Index interface {
	// Load bulk-builds the index from entries in any order. When a key
	// repeats, the first occurrence wins.
	Load(entries []Entry) error
	// Insert inserts or updates the value for key.
	Insert(key int64, value float64) error
	Get(key int64) (float64, error)
	Delete(key int64) error
	// Range iterates keys in [start, end], ascending.
	Range(start, end int64) (Iterator, error)
	Len() int
	Close() error
}
