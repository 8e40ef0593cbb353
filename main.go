package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "bmark"
	app.Usage = "benchmark an unbalanced binary search tree against ordered and hashed indexes"
	app.Version = version
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:   "verbose, v",
			Usage:  " development logging",
			EnvVar: "BMARK_VERBOSE",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "bench",
			Usage:  "run the suite and write CSV (and optional PNG charts)",
			Flags:  benchFlags,
			Action: runBench,
		},
		{
			Name:   "demo",
			Usage:  "print a small tree through insert, find, erase and balance",
			Action: func(c *cli.Context) error { return RunDemo(c.App.Writer) },
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "bmark: %+v\n", err)
		os.Exit(1)
	}
}

func runBench(c *cli.Context) error {
	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return errors.Wrap(err, "logger")
	}
	defer log.Sync()
	return Bench(log, cfg)
}

// Bench runs every configured structure at every size.
func Bench(log *zap.Logger, cfg *Config) (err error) {
	factories, err := Factories(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(cfg.CSVPath)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	defer func() {
		err = errors.CombineErrors(err, f.Close())
	}()
	rec, err := NewRecorder(csv.NewWriter(f))
	if err != nil {
		return err
	}

	for _, n := range cfg.Sizes {
		for _, fac := range factories {
			if err := RunSuite(log, rec, fac, n, cfg.Seed); err != nil {
				return err
			}
		}
	}
	log.Info("benchmark complete", zap.String("csv", cfg.CSVPath), zap.Int("rows", len(rec.Results)))

	if cfg.PlotPrefix == "" {
		return nil
	}
	paths, err := WritePlots(cfg.PlotPrefix, rec.Results)
	if err != nil {
		return err
	}
	log.Info("charts written", zap.Strings("files", paths))
	return nil
}
