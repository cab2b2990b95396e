package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/prdga/core"
	"github.com/katalvlaran/prdga/edgelist"
)

// app carries what every subcommand shares.
type app struct {
	out io.Writer
	log *zap.Logger

	logLevel  string
	logFormat string
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, log: zap.NewNop()}

	root := &cobra.Command{
		Use:          "prdga",
		Short:        "Perfect Roman domination by genetic search",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", "console", "log encoding: console or json")

	root.AddCommand(
		newRunCmd(a),
		newCheckCmd(a),
		newConstructCmd(a),
		newGenerateCmd(a),
	)
	return root
}

// newLogger builds a zap logger writing to stderr.
func newLogger(level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console", "":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}

	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn", "":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return nil, fmt.Errorf("unknown log level %q", level)
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// loadGraph reads an edge-list file and builds its graph.
func (a *app) loadGraph(path string) (*edgelist.Instance, *core.Graph, error) {
	inst, err := edgelist.Load(path)
	if err != nil {
		return nil, nil, err
	}
	g, err := inst.Graph()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debug("graph loaded",
		zap.String("instance", inst.Name),
		zap.Int("order", g.Order()),
		zap.Int("size", g.Size()),
	)
	return inst, g, nil
}
