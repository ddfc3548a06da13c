// Package spanning computes minimum spanning trees of weighted undirected
// graphs given as edge lists.
//
// What's inside
//
//	disjointset/  - union-find forest: union by rank, iterative path compression
//	graph/        - Node, Edge, edge-list helpers and the dense Index used by Prim
//	prim_kruskal/ - Kruskal and Prim builders, Compute dispatcher, max-tree ordering
//	builder/      - deterministic edge-list fixtures (path, grid, random, ...)
//	edgefile/     - YAML/JSON edge-list files
//	cmd/mstctl    - command-line front end: build, compare, generate
//
// Quick start
//
//	edges := []graph.Edge[string, int]{
//		graph.NewEdge(1, "A", "B"),
//		graph.NewEdge(2, "B", "C"),
//		graph.NewEdge(3, "A", "C"),
//	}
//	mst, err := prim_kruskal.NewKruskal(edges, prim_kruskal.Ascending[int]).BuildMST()
//	// mst = [A-B(1) B-C(2)], graph.TotalWeight(mst) = 3
//
// Both builders reject disconnected input with prim_kruskal.ErrDisconnected and
// return an empty tree for an empty edge list.
package spanning
