package main

import (
	"fmt"
	"io"

	"github.com/bstmap-bench/bmark/bst"
)

type demoWriter struct {
	w   io.Writer
	err error
}

func (d *demoWriter) printf(format string, args ...interface{}) {
	if d.err == nil {
		_, d.err = fmt.Fprintf(d.w, format, args...)
	}
}

func (d *demoWriter) dump(t *bst.Tree[int, float64]) {
	if d.err == nil {
		d.err = t.Dump(d.w)
	}
}

func (d *demoWriter) draw(t *bst.Tree[int, float64]) {
	if d.err == nil {
		d.err = t.Print(d.w)
	}
}

// RunDemo walks a small tree through construction, lookup, erase and
// balance, dumping it after each step.
func RunDemo(w io.Writer) error {
	d := &demoWriter{w: w}

	b := bst.NewPair(1, 19.0)
	b.Emplace(2, 2)
	d.printf("--- single pair, then insert ---\n")
	d.dump(b)

	a := bst.FromPairs([]bst.Pair[int, float64]{
		{Key: 2, Value: 3.4}, {Key: 1, Value: 6}, {Key: 7, Value: 4.332},
		{Key: 12, Value: 1}, {Key: 3, Value: 5}, {Key: 14, Value: 1.22},
	})
	d.printf("\n--- built from unsorted pairs ---\n")
	d.dump(a)
	d.draw(a)

	d.printf("\n--- lookups ---\n")
	for _, k := range []int{7, 8} {
		if it := a.Find(k); it.AtEnd() {
			d.printf("find(%d): end\n", k)
		} else {
			d.printf("find(%d): %v\n", k, it.Value())
		}
	}
	*a.At(20) = 2.5
	d.printf("at(20) = %v\n", *a.At(20))

	d.printf("\n--- erase 20 (leaf) and 3 (internal) ---\n")
	a.Erase(20)
	a.Erase(3)
	d.dump(a)

	for k := 15; k <= 20; k++ {
		a.Emplace(k, float64(k)/10)
	}
	d.printf("\n--- skewed by sequential inserts, height %d ---\n", a.Height())
	d.draw(a)
	a.Balance()
	d.printf("\n--- balanced, height %d ---\n", a.Height())
	d.draw(a)
	d.dump(a)
	return d.err
}
