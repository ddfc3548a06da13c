package graph

// Index assigns every distinct node a dense integer id in first-appearance
// order, so algorithms can work over slices instead of hashing payloads on
// every step.
type Index[T comparable] struct {
	ids   map[Node[T]]int
	nodes []Node[T]
}

// NewIndex builds the index for all endpoints of edges, in the order Nodes
// returns them.
// Complexity: O(E) time, O(V) space.
func NewIndex[T comparable, W any](edges []Edge[T, W]) *Index[T] {
	ix := &Index[T]{ids: make(map[Node[T]]int, len(edges))}
	for _, e := range edges {
		ix.add(e.From)
		ix.add(e.To)
	}

	return ix
}

func (ix *Index[T]) add(n Node[T]) int {
	if id, ok := ix.ids[n]; ok {
		return id
	}
	id := len(ix.nodes)
	ix.ids[n] = id
	ix.nodes = append(ix.nodes, n)

	return id
}

// ID returns the id of n and whether n is indexed.
func (ix *Index[T]) ID(n Node[T]) (int, bool) {
	id, ok := ix.ids[n]
	return id, ok
}

// Node returns the node with the given id. It panics if id is out of range.
func (ix *Index[T]) Node(id int) Node[T] { return ix.nodes[id] }

// Len returns the number of indexed nodes.
func (ix *Index[T]) Len() int { return len(ix.nodes) }

// Arc is one entry of an adjacency list: the neighbor's id and the weight of
// the connecting edge.
type Arc[W any] struct {
	To     int
	Weight W
}

// Adjacency builds the undirected adjacency list of edges over ix. Every edge
// contributes one arc on each endpoint's list (a self-loop contributes two
// arcs on the same list). Edges whose endpoints are not indexed are skipped.
// Complexity: O(V + E).
func Adjacency[T comparable, W any](ix *Index[T], edges []Edge[T, W]) [][]Arc[W] {
	adj := make([][]Arc[W], ix.Len())
	for _, e := range edges {
		u, ok := ix.ID(e.From)
		if !ok {
			continue
		}
		v, ok := ix.ID(e.To)
		if !ok {
			continue
		}
		adj[u] = append(adj[u], Arc[W]{To: v, Weight: e.Weight})
		adj[v] = append(adj[v], Arc[W]{To: u, Weight: e.Weight})
	}

	return adj
}
