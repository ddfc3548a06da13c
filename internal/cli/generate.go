package cli

import (
	"github.com/pingcap/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/spanning/builder"
	"github.com/katalvlaran/spanning/edgefile"
)

func newGenerateCmd(o *options) *cobra.Command {
	var (
		topology  string
		shape     builder.Shape
		seed      int64
		minWeight int
		maxWeight int
		prefix    string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic weighted edge list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if minWeight < 0 || maxWeight < minWeight {
				return errors.Errorf("weights must satisfy 0 <= min-weight <= max-weight, got %d and %d", minWeight, maxWeight)
			}
			cons, err := builder.Topology(topology, shape)
			if err != nil {
				return errors.Trace(err)
			}
			bopts := []builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithIntWeight(minWeight, maxWeight),
			}
			if prefix != "" {
				bopts = append(bopts, builder.WithPrefixIDs(prefix))
			}

			edges, err := builder.BuildEdges(bopts, cons...)
			if err != nil {
				return errors.Annotatef(err, "generate %s", topology)
			}
			o.log.Info("edge list generated",
				zap.String("topology", topology),
				zap.Int("edges", len(edges)),
				zap.Int64("seed", seed),
			)

			return o.writeDoc(cmd, edgefile.FromEdges(edges))
		},
	}

	f := cmd.Flags()
	f.StringVar(&topology, "topology", builder.TopologyRandom,
		"path, cycle, star, wheel, complete, grid, bipartite or random")
	f.IntVar(&shape.N, "n", 10, "vertex count")
	f.IntVar(&shape.Rows, "rows", 3, "grid rows")
	f.IntVar(&shape.Cols, "cols", 3, "grid columns")
	f.IntVar(&shape.Left, "left", 2, "bipartite left partition size")
	f.IntVar(&shape.Right, "right", 3, "bipartite right partition size")
	f.Float64Var(&shape.P, "p", 0.2, "chord probability for random")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.IntVar(&minWeight, "min-weight", 1, "smallest edge weight")
	f.IntVar(&maxWeight, "max-weight", 20, "largest edge weight")
	f.StringVar(&prefix, "prefix", "", "vertex ID prefix (default: bare indices)")

	return cmd
}
