// Package graph is the value model consumed by the MST builders.
//
// A graph is described by an edge list: []Edge[T, W]. Nodes exist only as
// endpoints of edges, identified by payload equality (T must be comparable).
// Weights are opaque (W is any); ordering is injected by the algorithms that
// need it, and TotalWeight sums them when W is numeric.
//
// Index and Adjacency turn an edge list into dense integer ids and an
// undirected adjacency list over those ids, which is what Prim's algorithm
// iterates on.
//
// All types are immutable values; nothing in this package locks or mutates
// shared state.
package graph
