// Package prim_kruskal provides two algorithms for computing the Minimum Spanning Tree (MST)
// of an undirected, weighted graph given as an edge list: Prim’s algorithm and Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized. |T| = |V|−1.
//
//   - Why MST matters:
//
//   - Network Design: cost-efficient cabling, piping or road backbones.
//
//   - Clustering: cutting the k−1 heaviest MST edges yields k single-linkage clusters.
//
//   - Subroutines: approximation algorithms (metric TSP, Steiner trees) start from an MST.
//
// Input Model
//
// A graph is a []graph.Edge[T, W]. Nodes exist only as edge endpoints and are
// compared by payload (T is comparable). Weights are opaque; their order is
// injected as a Compare[W] function at construction:
//
//	edges := []graph.Edge[string, int]{
//		graph.NewEdge(1, "A", "B"),
//		graph.NewEdge(2, "B", "C"),
//		graph.NewEdge(3, "A", "C"),
//	}
//	mst, err := prim_kruskal.NewKruskal(edges, prim_kruskal.Ascending[int]).BuildMST()
//
// Ascending is the natural order of any cmp.Ordered weight. Descending(cmp)
// inverts an order, turning either builder into a maximum spanning tree builder.
// Parallel edges and self-loops are accepted; a self-loop can never join a tree.
//
// Algorithms Provided
//
//   - Kruskal: NewKruskal(edges, compare, opts...).BuildMST()
//
//   - Strategy: all edges go into a min-heap; pop the cheapest and keep it iff its endpoints
//     lie in different components of a disjointset.Set, then Union them. Stop once |V|−1 edges are kept.
//
//   - Complexity: O(E log E + E·α(V)) time, O(V + E) space.
//
//   - Determinism: equal weights are popped in input order.
//
//   - Prim: NewPrim(edges, compare, opts...).BuildMST() / BuildMSTFrom(start)
//
//   - Strategy: grow one tree from a start node. A min-heap holds frontier records
//     {parent, node, weight}; a record whose node is already in the tree is stale and dropped.
//     Relaxation compares the single edge weight into the tree, never a path length.
//
//   - Complexity: O(E log E) ≈ O(E log V) time with lazy deletion, O(V + E) space.
//
//   - Start: BuildMST starts from the first node in input order; BuildMSTFrom takes an explicit one.
//
// Both builders return MSTs of equal total weight for the same input. With tied
// weights the edge sets may differ.
//
// Dispatch
//
// Compute(edges, compare, opts...) runs the algorithm named by WithMethod
// (MethodKruskal by default). WithStart seeds Prim. WithLogger routes one Debug
// record per edge decision to a *zap.Logger; the default logger is a no-op.
//
// Error Conditions
//
//   - ErrDisconnected  : fewer than |V|−1 edges could be selected. No partial tree is returned.
//   - ErrStartNotFound : Prim’s start is not an endpoint of any edge (or has the wrong type in WithStart).
//   - ErrNilComparator : the builder was constructed with a nil Compare.
//   - ErrUnknownMethod : Compute got a method name other than MethodPrim or MethodKruskal.
//
// An empty edge list is the empty graph: BuildMST returns an empty, non-nil
// slice and a nil error.
//
// Concurrency
//
// Builders are not safe for concurrent use. Distinct builders over the same
// edge slice are independent and may run in parallel.
//
// For examples of usage, see example_test.go.
package prim_kruskal
