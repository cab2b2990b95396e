package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prdga/labeling"
	"github.com/katalvlaran/prdga/oracle"
)

// errNotPerfect makes check exit non-zero for an invalid labeling.
var errNotPerfect = errors.New("labeling is not a perfect Roman dominating function")

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <graph-file> <labels>",
		Short: "Check a labeling against a graph",
		Long: "Check reports weight, fitness and every violating vertex of a labeling.\n" +
			"Labels are given in vertex order, either compact (0020110) or separated (0,0,2,...).",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := a.loadGraph(args[0])
			if err != nil {
				return err
			}
			l, err := labeling.Parse(args[1])
			if err != nil {
				return err
			}
			vs, err := oracle.Violations(g, l)
			if err != nil {
				return err
			}

			fitness, valid := oracle.Evaluate(g, l)
			fmt.Fprintf(a.out, "weight=%d fitness=%d valid=%t\n", l.Weight(), fitness, valid)
			for _, v := range vs {
				fmt.Fprintf(a.out, "  vertex %s: %s (%d neighbors labelled 2)\n", v.Vertex, v.Kind, v.Twos)
			}
			if !valid {
				return errNotPerfect
			}
			return nil
		},
	}
}
