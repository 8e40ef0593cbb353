package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

func seriesName(r BenchResult) string {
	if r.Config == "" {
		return r.Name
	}
	return r.Name + " (" + r.Config + ")"
}

// WritePlots saves one line chart per operation, ns/op against size with
// a line per structure, as <prefix>_<operation>.png. It returns the
// paths written.
func WritePlots(prefix string, results []BenchResult) ([]string, error) {
	byOp := make(map[string]map[string]plotter.XYs)
	var ops []string
	for _, r := range results {
		series, ok := byOp[r.Operation]
		if !ok {
			series = make(map[string]plotter.XYs)
			byOp[r.Operation] = series
			ops = append(ops, r.Operation)
		}
		name := seriesName(r)
		series[name] = append(series[name], plotter.XY{X: float64(r.Size), Y: float64(r.LatencyNs)})
	}

	var paths []string
	for _, op := range ops {
		p := plot.New()
		p.Title.Text = op
		p.X.Label.Text = "size"
		p.Y.Label.Text = "ns/op"
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{}
		p.Legend.Top = true

		series := byOp[op]
		names := make([]string, 0, len(series))
		for name := range series {
			names = append(names, name)
		}
		slices.Sort(names)

		var lines []interface{}
		for _, name := range names {
			pts := series[name]
			slices.SortFunc(pts, func(a, b plotter.XY) int {
				switch {
				case a.X < b.X:
					return -1
				case a.X > b.X:
					return 1
				}
				return 0
			})
			lines = append(lines, name, pts)
		}
		if err := plotutil.AddLinePoints(p, lines...); err != nil {
			return paths, errors.Wrapf(err, "plot %s", op)
		}

		path := fmt.Sprintf("%s_%s.png", prefix, fileSafe(op))
		if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
			return paths, errors.Wrapf(err, "save %s", path)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		}
		return '_'
	}, s)
}
