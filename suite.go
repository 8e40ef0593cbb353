package main

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/bstmap-bench/bmark/index"
	"github.com/bstmap-bench/bmark/index/bstindex"
	"github.com/bstmap-bench/bmark/index/btreeindex"
	"github.com/bstmap-bench/bmark/index/listindex"
	"github.com/bstmap-bench/bmark/index/llrbindex"
	"github.com/bstmap-bench/bmark/index/lsm"
	"github.com/bstmap-bench/bmark/index/mapindex"
	"github.com/bstmap-bench/bmark/index/treemapindex"
)

// Factory opens a fresh index of one structure.
type Factory struct {
	Name   string
	Config string
	Open   func() (index.Index, error)
}

func newFactory(name string, cfg *Config) (Factory, error) {
	switch name {
	case "bst":
		return Factory{Name: "BST", Open: func() (index.Index, error) { return bstindex.New(), nil }}, nil
	case "map":
		return Factory{Name: "HashMap", Open: func() (index.Index, error) { return mapindex.New(), nil }}, nil
	case "treemap":
		return Factory{Name: "TreeMap", Open: func() (index.Index, error) { return treemapindex.New(), nil }}, nil
	case "btree":
		degree := cfg.BTreeDegree
		return Factory{
			Name:   "B-Tree",
			Config: strconv.Itoa(degree),
			Open:   func() (index.Index, error) { return btreeindex.New(degree), nil },
		}, nil
	case "llrb":
		return Factory{Name: "LLRB", Open: func() (index.Index, error) { return llrbindex.New(), nil }}, nil
	case "lsm":
		return Factory{Name: "LSM-Tree", Open: func() (index.Index, error) { return lsm.Open() }}, nil
	case "list":
		return Factory{Name: "List", Open: func() (index.Index, error) { return listindex.NewListIndex(), nil }}, nil
	}
	return Factory{}, errors.Wrapf(ErrConfig, "unknown structure %q", name)
}

// Factories resolves the configured structure names.
func Factories(cfg *Config) ([]Factory, error) {
	out := make([]Factory, 0, len(cfg.Structures))
	for _, name := range cfg.Structures {
		f, err := newFactory(name, cfg)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// Dataset returns keys 0..n-1 in shuffled order with value i/n.
func Dataset(n int, seed int64) []index.Entry {
	rng := rand.New(rand.NewSource(seed))
	entries := make([]index.Entry, n)
	for i, k := range rng.Perm(n) {
		entries[i] = index.Entry{Key: int64(k), Value: float64(k) / float64(n)}
	}
	return entries
}

func perOp(d time.Duration, ops int) int64 {
	if ops <= 0 {
		return 0
	}
	return d.Nanoseconds() / int64(ops)
}

// RunSuite loads n entries into a fresh index from f and records the
// load, the memory footprint, a lookup of every key and the three
// workload mixes.
func RunSuite(log *zap.Logger, rec *Recorder, f Factory, n int, seed int64) (err error) {
	log = log.With(zap.String("structure", f.Name), zap.String("config", f.Config), zap.Int("size", n))
	log.Info("testing")

	idx, err := f.Open()
	if err != nil {
		return errors.Wrapf(err, "open %s", f.Name)
	}
	defer func() {
		err = errors.CombineErrors(err, idx.Close())
	}()

	row := func(op string, latency int64, mem MemoryStats) error {
		return rec.Record(BenchResult{
			Name:      f.Name,
			Config:    f.Config,
			Size:      n,
			Operation: op,
			LatencyNs: latency,
			MemMB:     mem.AllocMB,
			Objects:   mem.HeapObjects,
		})
	}

	data := Dataset(n, seed)
	start := time.Now()
	if err := idx.Load(data); err != nil {
		return errors.Wrapf(err, "load %s", f.Name)
	}
	loadLatency := perOp(time.Since(start), n)
	if idx.Len() != n {
		return errors.Newf("%s holds %d entries after loading %d", f.Name, idx.Len(), n)
	}
	data = nil

	// footprint sampled right after the load, before any workload
	if err := row("Footprint_SteadyState", loadLatency, GetDetailedMem()); err != nil {
		return err
	}

	start = time.Now()
	if err := LookupAll(idx, n); err != nil {
		return errors.Wrapf(err, "%s", f.Name)
	}
	if err := row("Lookup", perOp(time.Since(start), n), MemoryStats{}); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	workloads := []struct {
		op    string
		wType WorkloadType
		ops   int
	}{
		{"Workload_OLTP", OLTP, max(n/2, 1)},
		{"Workload_OLAP", OLAP, max(n/2, 1)},
		{"Workload_Range", Reporting, 100},
	}
	for _, w := range workloads {
		start = time.Now()
		if err := ExecuteWorkload(idx, w.wType, w.ops, n, rng); err != nil {
			return errors.Wrapf(err, "%s", f.Name)
		}
		if err := row(w.op, perOp(time.Since(start), w.ops), GetDetailedMem()); err != nil {
			return err
		}
	}
	log.Debug("done", zap.Int("len", idx.Len()))
	return nil
}
