// Package graph defines the immutable value types shared by the MST builders:
// Node, a wrapper around a comparable payload, and Edge, a weighted undirected
// connection between two nodes.
//
// This file declares Node, Edge, the Number constraint, and helpers over edge
// lists (Nodes, TotalWeight, SameEdgeSet).
package graph

import "fmt"

// Number is the set of weight types TotalWeight can sum.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Node wraps a payload value. Two nodes are equal iff their payloads are
// equal, so nodes can be used directly as map keys regardless of where they
// were constructed.
type Node[T comparable] struct {
	value T
}

// NewNode returns the node for payload v.
// Complexity: O(1).
func NewNode[T comparable](v T) Node[T] {
	return Node[T]{value: v}
}

// Value returns the node's payload.
func (n Node[T]) Value() T { return n.value }

// String renders the payload with %v.
func (n Node[T]) String() string { return fmt.Sprintf("%v", n.value) }

// Edge is an immutable (weight, from, to) triple. The graph is undirected:
// From and To only record the orientation the edge was created with.
type Edge[T comparable, W any] struct {
	// Weight is the cost of the edge, ordered by a caller-supplied comparator.
	Weight W

	// From is the first endpoint.
	From Node[T]

	// To is the second endpoint.
	To Node[T]
}

// NewEdge returns the edge from-to carrying weight.
// Complexity: O(1).
func NewEdge[T comparable, W any](weight W, from, to T) Edge[T, W] {
	return Edge[T, W]{Weight: weight, From: NewNode(from), To: NewNode(to)}
}

// Reversed returns the same edge with its endpoints swapped.
func (e Edge[T, W]) Reversed() Edge[T, W] {
	return Edge[T, W]{Weight: e.Weight, From: e.To, To: e.From}
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge[T, W]) IsLoop() bool { return e.From == e.To }

// String renders the edge as "{from} - weight - {to}".
func (e Edge[T, W]) String() string {
	return fmt.Sprintf("{%v} - %v - {%v}", e.From.value, e.Weight, e.To.value)
}

// Nodes returns the distinct endpoints of edges in first-appearance order
// (From before To within an edge).
// Complexity: O(E) time, O(V) space.
func Nodes[T comparable, W any](edges []Edge[T, W]) []Node[T] {
	seen := make(map[Node[T]]struct{}, len(edges))
	out := make([]Node[T], 0, len(edges))
	for _, e := range edges {
		for _, n := range [2]Node[T]{e.From, e.To} {
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			out = append(out, n)
		}
	}

	return out
}

// TotalWeight returns the sum of all edge weights.
// Complexity: O(E).
func TotalWeight[T comparable, W Number](edges []Edge[T, W]) W {
	var total W
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// SameEdgeSet reports whether a and b contain the same undirected edges with
// the same multiplicities, ignoring order and endpoint orientation.
// Complexity: O(len(a) + len(b)).
func SameEdgeSet[T comparable, W comparable](a, b []Edge[T, W]) bool {
	if len(a) != len(b) {
		return false
	}
	type key struct {
		u, v Node[T]
		w    W
	}
	count := make(map[key]int, len(a))
	for _, e := range a {
		count[key{e.From, e.To, e.Weight}]++
	}
	for _, e := range b {
		k := key{e.From, e.To, e.Weight}
		if count[k] == 0 {
			k = key{e.To, e.From, e.Weight}
		}
		if count[k] == 0 {
			return false
		}
		count[k]--
	}

	return true
}
