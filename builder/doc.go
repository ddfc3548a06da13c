// Package builder generates deterministic weighted edge lists for tests,
// benchmarks, examples and the mstctl generate command.
//
// Every constructor emits []graph.Edge[string, float64] into a shared sink;
// BuildEdges resolves options once and runs the constructors in order:
//
//	edges, err := builder.BuildEdges(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithIntWeight(1, 9)},
//		builder.Path(50), builder.RandomSparse(50, 0.1),
//	)
//
// The package offers:
//
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse; Topology resolves them by name.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn ("A"…"Z"),
//     ExcelColumnIDFn ("A","Z","AA",…), AlphanumericIDFn (base 36), PrefixIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntUniformWeightFn, NormalWeightFn, ExponentialWeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical edge lists.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability, ...) and never panic.
//   - An edge list cannot carry isolated vertices, so every topology requires
//     at least one edge.
package builder
