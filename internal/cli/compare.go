package cli

import (
	"fmt"

	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spanning/graph"
	"github.com/katalvlaran/spanning/prim_kruskal"
)

// ErrWeightMismatch means Kruskal and Prim disagreed on the tree weight.
var ErrWeightMismatch = errors.New("mstctl: kruskal and prim weights differ")

func newCompareCmd(o *options) *cobra.Command {
	var maxTree bool
	cmd := &cobra.Command{
		Use:   "compare FILE",
		Short: "Run Kruskal and Prim side by side and check that their weights agree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := loadGraph(args[0])
			if err != nil {
				return err
			}
			compare := order(maxTree)

			var kruskal, prim []graph.Edge[string, float64]
			g, gctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				mst, err := prim_kruskal.NewKruskal(edges, compare,
					prim_kruskal.WithLogger(o.log.Named(prim_kruskal.MethodKruskal))).BuildMST()
				kruskal = mst
				return errors.Annotate(err, "kruskal")
			})
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				mst, err := prim_kruskal.NewPrim(edges, compare,
					prim_kruskal.WithLogger(o.log.Named(prim_kruskal.MethodPrim))).BuildMST()
				prim = mst
				return errors.Annotate(err, "prim")
			})
			if err := g.Wait(); err != nil {
				return err
			}

			kw, pw := graph.TotalWeight(kruskal), graph.TotalWeight(prim)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-8s edges=%d weight=%g\n", prim_kruskal.MethodKruskal, len(kruskal), kw)
			fmt.Fprintf(out, "%-8s edges=%d weight=%g\n", prim_kruskal.MethodPrim, len(prim), pw)
			fmt.Fprintf(out, "same edge set: %t\n", graph.SameEdgeSet(kruskal, prim))
			if kw != pw {
				return errors.Annotatef(ErrWeightMismatch, "%g != %g", kw, pw)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&maxTree, "max", false, "compare maximum spanning trees")

	return cmd
}
