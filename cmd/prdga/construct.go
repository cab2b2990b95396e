package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/prdga/construct"
	"github.com/katalvlaran/prdga/labeling"
	"github.com/katalvlaran/prdga/oracle"
	"github.com/katalvlaran/prdga/rng"
)

func newConstructCmd(a *app) *cobra.Command {
	var (
		method   string
		seed     int64
		count    int
		tieBreak string
		reduce   bool
	)
	cmd := &cobra.Command{
		Use:   "construct <graph-file>",
		Short: "Build labelings with a constructive heuristic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}

			var ls []labeling.Labeling
			switch method {
			case "randomized":
				if ls, err = construct.Randomized(g, rng.FromSeed(seed), count); err != nil {
					return err
				}
			case "degree":
				tb, err := construct.ParseTieBreak(tieBreak)
				if err != nil {
					return err
				}
				l, err := construct.DegreeBased(g, construct.WithTieBreak(tb))
				if err != nil {
					return err
				}
				ls = []labeling.Labeling{l}
			default:
				return fmt.Errorf("unknown method %q (want randomized or degree)", method)
			}

			for i, l := range ls {
				if reduce {
					if l, err = construct.ReduceWeight(g, l); err != nil {
						return err
					}
				}
				fitness, valid := oracle.Evaluate(g, l)
				fmt.Fprintf(a.out, "%s weight=%d fitness=%d valid=%t\n", l, l.Weight(), fitness, valid)
				a.log.Debug("constructed", zap.Int("index", i), zap.String("method", method), zap.Int("fitness", fitness))
			}
			return nil
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&method, "method", "m", "degree", "randomized or degree")
	fl.Int64Var(&seed, "seed", rng.DefaultSeed, "seed for the randomized method, 0 selects 1")
	fl.IntVar(&count, "count", 0, "labelings to build with the randomized method; 0 means one per vertex")
	fl.StringVar(&tieBreak, "tie-break", construct.TieBreakLowestID.String(), "degree method tie-break: lowest-id or insertion")
	fl.BoolVar(&reduce, "reduce", false, "apply weight reduction to each labeling")
	return cmd
}
