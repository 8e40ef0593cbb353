package main

import (
	"encoding/csv"
	"runtime"
	"strconv"

	"github.com/cockroachdb/errors"
)

var csvHeader = []string{"Structure", "Config", "Size", "TestType", "LatencyNs", "MemMB", "HeapObjects"}

// BenchResult is one CSV row; Objects tracks GC pressure.
type BenchResult struct {
	Name      string
	Config    string
	Size      int
	Operation string
	LatencyNs int64
	MemMB     uint64
	Objects   uint64
}

type MemoryStats struct {
	AllocMB      uint64
	TotalAllocMB uint64
	HeapObjects  uint64
}

// GetDetailedMem samples the heap after a forced collection, so it
// reports live data rather than garbage.
func GetDetailedMem() MemoryStats {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	return MemoryStats{
		AllocMB:      m.Alloc / 1024 / 1024,
		TotalAllocMB: m.TotalAlloc / 1024 / 1024,
		HeapObjects:  m.HeapObjects,
	}
}

// Recorder writes results as CSV rows and keeps them for the charts.
type Recorder struct {
	w       *csv.Writer
	Results []BenchResult
}

func NewRecorder(w *csv.Writer) (*Recorder, error) {
	if err := w.Write(csvHeader); err != nil {
		return nil, errors.Wrap(err, "csv header")
	}
	return &Recorder{w: w}, nil
}

// Record writes res and flushes, so a crashed run keeps its rows.
func (r *Recorder) Record(res BenchResult) error {
	r.Results = append(r.Results, res)
	err := r.w.Write([]string{
		res.Name,
		res.Config,
		strconv.Itoa(res.Size),
		res.Operation,
		strconv.FormatInt(res.LatencyNs, 10),
		strconv.FormatUint(res.MemMB, 10),
		strconv.FormatUint(res.Objects, 10),
	})
	if err != nil {
		return errors.Wrap(err, "csv record")
	}
	r.w.Flush()
	return errors.Wrap(r.w.Error(), "csv flush")
}
