package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prdga/builder"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		n, n2, rows, cols, degree int
		p                         float64
		seed                      int64
		outFile                   string
	)
	cmd := &cobra.Command{
		Use:   "generate <path|cycle|star|wheel|complete|bipartite|grid|sparse|regular>",
		Short: "Write a generated instance in edge-list format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var topo builder.Topology
			switch args[0] {
			case "path":
				topo = builder.Path(n)
			case "cycle":
				topo = builder.Cycle(n)
			case "star":
				topo = builder.Star(n)
			case "wheel":
				topo = builder.Wheel(n)
			case "complete":
				topo = builder.Complete(n)
			case "bipartite":
				topo = builder.CompleteBipartite(n, n2)
			case "grid":
				topo = builder.Grid(rows, cols)
			case "sparse":
				topo = builder.RandomSparse(n, p)
			case "regular":
				topo = builder.RandomRegular(n, degree)
			default:
				return fmt.Errorf("unknown topology %q", args[0])
			}

			inst, err := builder.Instance(args[0], topo, builder.WithSeed(seed))
			if err != nil {
				return err
			}
			if outFile == "" {
				_, err = inst.WriteTo(a.out)
				return err
			}
			f, err := os.Create(outFile)
			if err != nil {
				return err
			}
			if _, err = inst.WriteTo(f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&n, "n", "n", 10, "vertex count (left side for bipartite)")
	fl.IntVar(&n2, "n2", 10, "right side for bipartite")
	fl.IntVar(&rows, "rows", 4, "grid rows")
	fl.IntVar(&cols, "cols", 4, "grid columns")
	fl.IntVarP(&degree, "degree", "d", 3, "degree for regular")
	fl.Float64VarP(&p, "p", "p", 0.1, "edge probability for sparse")
	fl.Int64Var(&seed, "seed", 1, "seed for random topologies, 0 selects 1")
	fl.StringVarP(&outFile, "file", "f", "", "write to this file instead of stdout")
	return cmd
}
