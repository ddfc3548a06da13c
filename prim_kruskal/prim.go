// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning Tree (MST) algorithm.
// It grows the MST from a single start node using a min‐heap of frontier records.
package prim_kruskal

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanning/graph"
)

// Prim builds a Minimum Spanning Tree by growing one tree outwards from a start
// node, always attaching the cheapest edge between the tree and an outside node.
//
// The edge list is turned into dense node ids and an undirected adjacency list
// once, at construction. A Prim value is not safe for concurrent use.
type Prim[T comparable, W any] struct {
	compare Compare[W]
	index   *graph.Index[T]
	adj     [][]graph.Arc[W]
	log     *zap.Logger
}

// NewPrim returns a Prim builder over edges ordered by compare.
// Only the Logger option is relevant; the start node is chosen per build call.
// Complexity: O(V + E).
func NewPrim[T comparable, W any](edges []graph.Edge[T, W], compare Compare[W], opts ...Option) *Prim[T, W] {
	o := resolveOptions(opts)
	ix := graph.NewIndex(edges)

	return &Prim[T, W]{
		compare: compare,
		index:   ix,
		adj:     graph.Adjacency(ix, edges),
		log:     o.Logger,
	}
}

// BuildMST computes the MST starting from the first node in input order
// (the From endpoint of the first edge).
//
// Error Conditions: see BuildMSTFrom. An empty edge list yields an empty MST.
func (p *Prim[T, W]) BuildMST() ([]graph.Edge[T, W], error) {
	if p.compare == nil {
		return nil, ErrNilComparator
	}
	if p.index.Len() == 0 {
		return []graph.Edge[T, W]{}, nil
	}

	return p.run(0)
}

// BuildMSTFrom computes the MST starting from start. With tied weights the
// chosen start can change which edges are selected, never the total weight.
//
// Error Conditions:
//   - ErrNilComparator : the builder was constructed with a nil comparator.
//   - ErrStartNotFound : start is not an endpoint of any edge.
//   - ErrDisconnected  : fewer than |V|-1 nodes could be reached from start.
//
// Steps:
//  1. Resolve start to its id.
//  2. Push a frontier record (no parent, start) onto the min-heap.
//  3. Pop the cheapest record. If its node is already in the tree the record
//     is stale (the heap has no decrease-key) and is dropped.
//  4. Otherwise add the node to the tree and, if it has a parent, emit the
//     edge (parent, node, weight) recorded when the node was relaxed.
//  5. Relax every neighbor outside the tree: if the direct edge weight is
//     below the neighbor's best known attachment cost, record it and push a
//     fresh record with the new tree node as parent.
//  6. Repeat until |V|-1 edges are emitted or the heap is empty.
//  7. If fewer than |V|-1 edges were emitted → ErrDisconnected.
//
// The frontier key is the cost of a single edge into the tree, not a path
// length from start: Prim never accumulates weights.
//
// Complexity: O(E log E) time with lazy deletion (≈ O(E log V)), O(V + E) memory.
func (p *Prim[T, W]) BuildMSTFrom(start T) ([]graph.Edge[T, W], error) {
	if p.compare == nil {
		return nil, ErrNilComparator
	}
	id, ok := p.index.ID(graph.NewNode(start))
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	return p.run(id)
}

// run grows the tree from start and enforces the spanning-tree size.
func (p *Prim[T, W]) run(start int) ([]graph.Edge[T, W], error) {
	mst := p.build(start)
	if n := p.index.Len(); len(mst) != n-1 {
		return nil, disconnected(len(mst), n)
	}

	return mst, nil
}

// build runs the frontier loop from start and returns whatever tree it grew.
func (p *Prim[T, W]) build(start int) []graph.Edge[T, W] {
	n := p.index.Len()
	var (
		best    = make([]W, n)    // cheapest known edge into the tree, per node
		reached = make([]bool, n) // best[v] holds a real value
		inTree  = make([]bool, n) // node finalized
		mst     = make([]graph.Edge[T, W], 0, n-1)
		seq     int
	)

	pq := &frontierPQ[W]{compare: p.compare}
	reached[start] = true
	heap.Push(pq, frontier[W]{parent: -1, node: start, seq: seq})

	for pq.Len() > 0 && len(mst) < n-1 {
		rec := heap.Pop(pq).(frontier[W])
		if inTree[rec.node] {
			continue
		}
		inTree[rec.node] = true

		if rec.parent >= 0 {
			e := graph.Edge[T, W]{
				Weight: rec.weight,
				From:   p.index.Node(rec.parent),
				To:     p.index.Node(rec.node),
			}
			mst = append(mst, e)
			p.log.Debug("prim: edge selected", zap.Stringer("edge", e))
		}

		for _, arc := range p.adj[rec.node] {
			if inTree[arc.To] {
				continue
			}
			if reached[arc.To] && p.compare(arc.Weight, best[arc.To]) >= 0 {
				continue
			}
			reached[arc.To] = true
			best[arc.To] = arc.Weight
			seq++
			heap.Push(pq, frontier[W]{parent: rec.node, node: arc.To, weight: arc.Weight, seq: seq})
		}
	}

	return mst
}

// frontier is a candidate attachment of node to the tree via parent.
// parent is -1 for the start node.
type frontier[W any] struct {
	parent int
	node   int
	weight W
	seq    int // push order, breaks weight ties deterministically
}

// frontierPQ implements heap.Interface for a min-heap of frontier records.
type frontierPQ[W any] struct {
	items   []frontier[W]
	compare Compare[W]
}

// Len returns the number of records in the priority queue.
func (pq *frontierPQ[W]) Len() int { return len(pq.items) }

// Less orders by edge weight, then by push order. The start record has no
// edge and is always popped alone, so its zero weight is never compared.
func (pq *frontierPQ[W]) Less(i, j int) bool {
	if c := pq.compare(pq.items[i].weight, pq.items[j].weight); c != 0 {
		return c < 0
	}

	return pq.items[i].seq < pq.items[j].seq
}

// Swap swaps elements at indices i and j.
func (pq *frontierPQ[W]) Swap(i, j int) { pq.items[i], pq.items[j] = pq.items[j], pq.items[i] }

// Push appends a frontier record. Called by heap.Push.
func (pq *frontierPQ[W]) Push(x any) { pq.items = append(pq.items, x.(frontier[W])) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontierPQ[W]) Pop() any {
	old := pq.items
	n := len(old)
	rec := old[n-1]
	pq.items = old[:n-1]

	return rec
}
