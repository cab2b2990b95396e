package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/prdga/ga"
	"github.com/katalvlaran/prdga/metrics"
	"github.com/katalvlaran/prdga/rng"
)

type runFlags struct {
	config      string
	seed        int64
	trials      int
	generations int
	population  int
	repair      bool
	metricsFile string
	csvFile     string
	output      string
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <graph-file>",
		Short: "Run the genetic algorithm on an edge-list instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			return a.run(args[0], cfg, f)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "YAML file with GA parameters")
	fl.Int64Var(&f.seed, "seed", rng.DefaultSeed, "base seed, 0 selects 1; trial i > 0 derives its own")
	fl.IntVar(&f.trials, "trials", 1, "independent runs")
	fl.IntVar(&f.generations, "generations", 0, "generations per run")
	fl.IntVar(&f.population, "population", 0, "population size")
	fl.BoolVar(&f.repair, "repair", false, "repair children before scoring")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this textfile")
	fl.StringVar(&f.csvFile, "csv", "", "append one result row per trial to this CSV file")
	fl.StringVarP(&f.output, "output", "o", "text", "output format: text or json")
	return cmd
}

// resolve layers defaults, the config file and explicitly set flags.
func (f runFlags) resolve(cmd *cobra.Command) (ga.Config, error) {
	cfg := ga.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = ga.LoadConfig(f.config); err != nil {
			return ga.Config{}, err
		}
	}
	fl := cmd.Flags()
	if fl.Changed("seed") {
		cfg.Seed = f.seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = rng.DefaultSeed
	}
	if fl.Changed("generations") {
		cfg.Generations = f.generations
	}
	if fl.Changed("population") {
		cfg.PopulationSize = f.population
	}
	if fl.Changed("repair") {
		cfg.Repair = f.repair
	}
	if f.trials < 1 {
		return ga.Config{}, fmt.Errorf("--trials must be at least 1, got %d", f.trials)
	}
	if f.output != "text" && f.output != "json" {
		return ga.Config{}, fmt.Errorf("unknown output format %q", f.output)
	}
	return cfg, cfg.Validate()
}

func (a *app) run(path string, cfg ga.Config, f runFlags) error {
	inst, g, err := a.loadGraph(path)
	if err != nil {
		return err
	}

	var collector *metrics.Collector
	if f.metricsFile != "" {
		collector = metrics.NewCollector(metrics.DefaultNamespace)
	}

	rep := report{Instance: instanceInfo(inst, g), Config: cfg}
	for trial := 0; trial < f.trials; trial++ {
		tc := cfg
		if trial > 0 {
			tc.Seed = rng.DeriveSeed(cfg.Seed, uint64(trial))
		}
		opts := []ga.Option{ga.WithLogger(a.log.With(zap.Int("trial", trial)))}
		if collector != nil {
			opts = append(opts, ga.WithObserver(collector))
		}

		res, err := ga.Run(g, tc, opts...)
		if err != nil {
			return fmt.Errorf("trial %d: %w", trial, err)
		}
		if collector != nil {
			collector.RunFinished(res)
		}
		rep.Trials = append(rep.Trials, newTrialReport(trial, tc.Seed, res))
	}

	if collector != nil {
		if err := collector.WriteTextfile(f.metricsFile); err != nil {
			return err
		}
	}
	if f.csvFile != "" {
		if err := appendCSV(f.csvFile, rep); err != nil {
			return err
		}
	}
	return rep.write(a.out, f.output)
}
