package main

import (
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli"

	"github.com/bstmap-bench/bmark/index/btreeindex"
)

// ErrConfig marks a rejected flag or environment value.
var ErrConfig = errors.New("invalid configuration")

// structures in the order they are benchmarked
var knownStructures = []string{"bst", "map", "treemap", "btree", "llrb", "lsm", "list"}

// the linear baseline is quadratic to load, so it only runs when asked for
var defaultStructures = "bst,map,treemap,btree,llrb,lsm"

// Config holds everything the bench command needs.
type Config struct {
	Sizes       []int
	Structures  []string
	Seed        int64
	CSVPath     string
	PlotPrefix  string
	BTreeDegree int
	Verbose     bool
}

var benchFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "sizes, s",
		Value:  "1000,10000,100000",
		Usage:  " comma separated tree sizes `N,N,...`",
		EnvVar: "BMARK_SIZES",
	},
	cli.StringFlag{
		Name:   "structures, t",
		Value:  defaultStructures,
		Usage:  " structures to measure `LIST` [" + strings.Join(knownStructures, "|") + "|all]",
		EnvVar: "BMARK_STRUCTURES",
	},
	cli.Int64Flag{
		Name:   "seed",
		Value:  1,
		Usage:  " shuffle and workload seed `SEED`",
		EnvVar: "BMARK_SEED",
	},
	cli.StringFlag{
		Name:   "csv, o",
		Value:  "results.csv",
		Usage:  " write results to `FILE`",
		EnvVar: "BMARK_CSV",
	},
	cli.StringFlag{
		Name:   "plot, p",
		Value:  "",
		Usage:  " write one PNG chart per operation as `PREFIX`_<op>.png",
		EnvVar: "BMARK_PLOT",
	},
	cli.IntFlag{
		Name:   "btree-degree",
		Value:  btreeindex.DefaultDegree,
		Usage:  " google/btree degree `D`",
		EnvVar: "BMARK_BTREE_DEGREE",
	},
}

func configFromContext(c *cli.Context) (*Config, error) {
	sizes, err := parseSizes(c.String("sizes"))
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Sizes:       sizes,
		Structures:  parseStructures(c.String("structures")),
		Seed:        c.Int64("seed"),
		CSVPath:     c.String("csv"),
		PlotPrefix:  c.String("plot"),
		BTreeDegree: c.Int("btree-degree"),
		Verbose:     c.GlobalBool("verbose"),
	}
	return cfg, cfg.Validate()
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(ErrConfig, "size %q: %v", f, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func parseStructures(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		switch {
		case f == "":
		case f == "all":
			return slices.Clone(knownStructures)
		case !slices.Contains(out, f):
			out = append(out, f)
		}
	}
	return out
}

// Validate rejects configurations the suite cannot run.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return errors.Wrap(ErrConfig, "no sizes given")
	}
	for _, n := range c.Sizes {
		if n <= 0 {
			return errors.Wrapf(ErrConfig, "size %d must be positive", n)
		}
	}
	if len(c.Structures) == 0 {
		return errors.Wrap(ErrConfig, "no structures given")
	}
	for _, s := range c.Structures {
		if !slices.Contains(knownStructures, s) {
			return errors.Wrapf(ErrConfig, "unknown structure %q", s)
		}
	}
	if c.BTreeDegree < 2 {
		return errors.Wrapf(ErrConfig, "btree degree %d must be at least 2", c.BTreeDegree)
	}
	if c.CSVPath == "" {
		return errors.Wrap(ErrConfig, "csv path is empty")
	}
	return nil
}
