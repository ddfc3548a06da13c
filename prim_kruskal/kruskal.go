// Package prim_kruskal provides an implementation of Kruskal’s Minimum Spanning Tree algorithm.
// It consumes an undirected, weighted edge list and produces a slice of edges forming the MST.
package prim_kruskal

import (
	"container/heap"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanning/disjointset"
	"github.com/katalvlaran/spanning/graph"
)

// Kruskal builds a Minimum Spanning Tree by always taking the globally cheapest
// edge that does not close a cycle. Cycle detection is delegated to a
// disjointset.Set over the graph's nodes.
//
// A Kruskal value is not safe for concurrent use; its forest is reset at the
// start of every BuildMST call.
type Kruskal[T comparable, W any] struct {
	edges   []graph.Edge[T, W]
	compare Compare[W]
	forest  *disjointset.Set[graph.Node[T]]
	log     *zap.Logger
}

// NewKruskal returns a Kruskal builder over edges ordered by compare.
// Only the Logger option is relevant to Kruskal.
// Complexity: O(1).
func NewKruskal[T comparable, W any](edges []graph.Edge[T, W], compare Compare[W], opts ...Option) *Kruskal[T, W] {
	o := resolveOptions(opts)

	return &Kruskal[T, W]{
		edges:   edges,
		compare: compare,
		forest:  disjointset.New[graph.Node[T]](),
		log:     o.Logger,
	}
}

// BuildMST computes the Minimum Spanning Tree of the edge list.
//
// Error Conditions:
//   - ErrNilComparator : the builder was constructed with a nil comparator.
//   - ErrDisconnected  : fewer than |V|-1 edges could be selected.
//
// Steps:
//  1. Collect the distinct nodes in input order; no nodes → empty MST, nil error.
//  2. Reset the forest and MakeSet every node.
//  3. Heapify all edges by weight; equal weights keep input order.
//  4. Pop the cheapest edge. If its endpoints have different representatives,
//     Union them and keep the edge; otherwise it would close a cycle, drop it.
//  5. Stop once |V|-1 edges are kept or the heap is empty.
//  6. If fewer than |V|-1 edges were kept → ErrDisconnected.
//
// Complexity: O(E log E + E·α(V)). Memory: O(E + V).
func (k *Kruskal[T, W]) BuildMST() ([]graph.Edge[T, W], error) {
	if k.compare == nil {
		return nil, ErrNilComparator
	}

	// 1. Distinct nodes; the empty graph has the empty tree.
	nodes := graph.Nodes(k.edges)
	if len(nodes) == 0 {
		return []graph.Edge[T, W]{}, nil
	}

	// 2. One singleton component per node.
	k.forest.Reset()
	for _, n := range nodes {
		k.forest.MakeSet(n)
	}

	// 3. Min-heap over every input edge.
	pq := &edgePQ[T, W]{
		items:   make([]edgeItem[T, W], len(k.edges)),
		compare: k.compare,
	}
	for i, e := range k.edges {
		pq.items[i] = edgeItem[T, W]{edge: e, seq: i}
	}
	heap.Init(pq)

	// 4–5. Greedy selection.
	want := len(nodes) - 1
	mst := make([]graph.Edge[T, W], 0, want)
	for pq.Len() > 0 && len(mst) < want {
		e := heap.Pop(pq).(edgeItem[T, W]).edge

		repFrom, err := k.forest.Find(e.From)
		if err != nil {
			return nil, err
		}
		repTo, err := k.forest.Find(e.To)
		if err != nil {
			return nil, err
		}
		if repFrom == repTo {
			k.log.Debug("kruskal: edge closes a cycle", zap.Stringer("edge", e))
			continue
		}

		if _, err = k.forest.Union(repFrom, repTo); err != nil {
			return nil, err
		}
		mst = append(mst, e)
		k.log.Debug("kruskal: edge selected", zap.Stringer("edge", e), zap.Int("components", k.forest.Size()))
	}

	// 6. Anything short of a spanning tree is a failure.
	if len(mst) != want {
		return nil, disconnected(len(mst), len(nodes))
	}

	return mst, nil
}

// Forest returns the disjoint-set forest left by the last BuildMST call.
// After a failed build on a disconnected graph its components are the
// connected components of the input.
func (k *Kruskal[T, W]) Forest() *disjointset.Set[graph.Node[T]] { return k.forest }

// edgeItem is an edge plus its input position, used to break weight ties.
type edgeItem[T comparable, W any] struct {
	edge graph.Edge[T, W]
	seq  int
}

// edgePQ implements heap.Interface for a min-heap of edges ordered by compare,
// then by input position.
type edgePQ[T comparable, W any] struct {
	items   []edgeItem[T, W]
	compare Compare[W]
}

// Len returns the number of edges in the priority queue.
func (pq *edgePQ[T, W]) Len() int { return len(pq.items) }

// Less orders by weight, then by input position.
func (pq *edgePQ[T, W]) Less(i, j int) bool {
	if c := pq.compare(pq.items[i].edge.Weight, pq.items[j].edge.Weight); c != 0 {
		return c < 0
	}

	return pq.items[i].seq < pq.items[j].seq
}

// Swap swaps elements at indices i and j.
func (pq *edgePQ[T, W]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends an edgeItem. Called by heap.Push.
func (pq *edgePQ[T, W]) Push(x any) { pq.items = append(pq.items, x.(edgeItem[T, W])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *edgePQ[T, W]) Pop() any {
	old := pq.items
	n := len(old)
	item := old[n-1]
	pq.items = old[:n-1]

	return item
}
