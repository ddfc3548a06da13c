package cli

import (
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanning/edgefile"
	"github.com/katalvlaran/spanning/graph"
	"github.com/katalvlaran/spanning/prim_kruskal"
)

func newBuildCmd(o *options) *cobra.Command {
	var (
		algo    string
		start   string
		maxTree bool
	)
	cmd := &cobra.Command{
		Use:   "build FILE",
		Short: "Compute the spanning tree of an edge-list file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			edges, err := loadGraph(args[0])
			if err != nil {
				return err
			}

			opts := []prim_kruskal.Option{
				prim_kruskal.WithMethod(algo),
				prim_kruskal.WithLogger(o.log.Named(algo)),
			}
			if cmd.Flags().Changed("start") {
				opts = append(opts, prim_kruskal.WithStart(start))
			}

			mst, err := prim_kruskal.Compute(edges, order(maxTree), opts...)
			if err != nil {
				return errors.Annotatef(err, "build %s", args[0])
			}
			o.log.Info("spanning tree built",
				zap.String("algo", algo),
				zap.Bool("max", maxTree),
				zap.Int("nodes", len(graph.Nodes(edges))),
				zap.Int("edges", len(mst)),
				zap.Float64("weight", graph.TotalWeight(mst)),
			)

			return o.writeDoc(cmd, edgefile.FromEdges(mst))
		},
	}

	cmd.Flags().StringVar(&algo, "algo", prim_kruskal.MethodKruskal, "algorithm: kruskal or prim")
	cmd.Flags().StringVar(&start, "start", "", "start node for prim (default: first node in the file)")
	cmd.Flags().BoolVar(&maxTree, "max", false, "build a maximum spanning tree")

	return cmd
}

// loadGraph reads path and rejects declared nodes that no edge reaches.
func loadGraph(path string) ([]graph.Edge[string, float64], error) {
	doc, err := edgefile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if iso := doc.Isolated(); len(iso) > 0 {
		return nil, errors.Annotatef(prim_kruskal.ErrDisconnected, "%s: isolated nodes %v", path, iso)
	}

	return doc.Graph(), nil
}

// order returns the weight order for a minimum or maximum spanning tree.
func order(maxTree bool) prim_kruskal.Compare[float64] {
	if maxTree {
		return prim_kruskal.Descending(prim_kruskal.Ascending[float64])
	}

	return prim_kruskal.Ascending[float64]
}
