package main

import (
	"math/rand"

	"github.com/cockroachdb/errors"

	"github.com/bstmap-bench/bmark/index"
)

type WorkloadType string

const (
	OLTP      WorkloadType = "OLTP (90/10)"
	OLAP      WorkloadType = "OLAP (10/90)"
	Reporting WorkloadType = "Reporting (Range)"
)

// width of a Reporting scan
const rangeWidth = 100

// ExecuteWorkload runs ops operations of the given mix over keys drawn
// from [0, keySpace). A missing key is not an error.
func ExecuteWorkload(idx index.Index, wType WorkloadType, ops, keySpace int, rng *rand.Rand) error {
	for i := 0; i < ops; i++ {
		choice := rng.Intn(100)
		key := int64(rng.Intn(keySpace))

		var err error
		switch wType {
		case OLTP:
			if choice < 90 {
				_, err = idx.Get(key)
			} else {
				err = idx.Insert(key, float64(choice))
			}
		case OLAP:
			if choice < 10 {
				_, err = idx.Get(key)
			} else {
				err = idx.Insert(key, float64(choice))
			}
		case Reporting:
			err = scan(idx, key, key+rangeWidth)
		default:
			return errors.Newf("unknown workload %q", wType)
		}
		if err != nil && !errors.Is(err, index.ErrNotFound) {
			return errors.Wrapf(err, "%s op %d", wType, i)
		}
	}
	return nil
}

func scan(idx index.Index, start, end int64) error {
	it, err := idx.Range(start, end)
	if err != nil {
		return err
	}
	for it.Next() {
	}
	if err := it.Error(); err != nil {
		it.Close()
		return err
	}
	return it.Close()
}

// LookupAll finds every key in [0, n), failing on the first miss.
func LookupAll(idx index.Index, n int) error {
	for k := 0; k < n; k++ {
		if _, err := idx.Get(int64(k)); err != nil {
			return errors.Wrapf(err, "lookup %d", k)
		}
	}
	return nil
}
