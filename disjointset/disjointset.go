package disjointset

// node is one element's membership record.
// parent is an arena index; a root points at itself.
type node[T comparable] struct {
	value  T
	parent int
	rank   int // upper bound on subtree height; meaningful only for roots
}

// Set is a disjoint-set forest over values of type T.
//
// Nodes live in an arena slice and refer to each other by index, so the
// forest owns every node and never hands pointers out. The zero value is not
// usable; construct with New or NewWithCapacity.
type Set[T comparable] struct {
	index map[T]int        // value → arena slot
	nodes []node[T]        // arena, in registration order
	roots map[int]struct{} // current representatives
}

// New returns an empty Set.
// Complexity: O(1).
func New[T comparable]() *Set[T] {
	return NewWithCapacity[T](0)
}

// NewWithCapacity returns an empty Set pre-sized for n elements.
// Complexity: O(1) plus allocation of n slots.
func NewWithCapacity[T comparable](n int) *Set[T] {
	if n < 0 {
		n = 0
	}

	return &Set[T]{
		index: make(map[T]int, n),
		nodes: make([]node[T], 0, n),
		roots: make(map[int]struct{}, n),
	}
}

// MakeSet registers v as a new singleton component and reports whether v was
// added. Registering a value that is already present leaves the forest
// untouched and returns false.
//
// Complexity: O(1) amortized.
func (s *Set[T]) MakeSet(v T) bool {
	if _, ok := s.index[v]; ok {
		return false
	}
	id := len(s.nodes)
	s.nodes = append(s.nodes, node[T]{value: v, parent: id})
	s.index[v] = id
	s.roots[id] = struct{}{}

	return true
}

// Union merges the components containing a and b and reports whether a merge
// happened. If a and b already share a representative nothing is mutated and
// Union returns (false, nil).
//
// Steps:
//  1. Resolve both values to their roots (with path compression).
//  2. Equal ranks: attach b's root under a's root, increment a's rank.
//  3. a's root has the greater rank: attach b's root under a's root.
//  4. Otherwise: attach a's root under b's root.
//  5. Drop the root that became a child from the representative set.
//
// Errors: ErrNotFound if either value was never registered.
// Complexity: O(α(n)) amortized.
func (s *Set[T]) Union(a, b T) (bool, error) {
	ia, ok := s.index[a]
	if !ok {
		return false, notFound(a)
	}
	ib, ok := s.index[b]
	if !ok {
		return false, notFound(b)
	}

	ra, rb := s.root(ia), s.root(ib)
	if ra == rb {
		return false, nil
	}

	switch rankA, rankB := s.nodes[ra].rank, s.nodes[rb].rank; {
	case rankA == rankB:
		s.nodes[rb].parent = ra
		s.nodes[ra].rank++
		delete(s.roots, rb)
	case rankA > rankB:
		s.nodes[rb].parent = ra
		delete(s.roots, rb)
	default:
		s.nodes[ra].parent = rb
		delete(s.roots, ra)
	}

	return true, nil
}

// Find returns the representative value of v's component.
// Every node visited on the way to the root is re-pointed at the root.
//
// Errors: ErrNotFound if v was never registered.
// Complexity: O(α(n)) amortized.
func (s *Set[T]) Find(v T) (T, error) {
	i, ok := s.index[v]
	if !ok {
		var zero T
		return zero, notFound(v)
	}

	return s.nodes[s.root(i)].value, nil
}

// Connected reports whether a and b belong to the same component.
// Errors: ErrNotFound if either value was never registered.
func (s *Set[T]) Connected(a, b T) (bool, error) {
	ia, ok := s.index[a]
	if !ok {
		return false, notFound(a)
	}
	ib, ok := s.index[b]
	if !ok {
		return false, notFound(b)
	}

	return s.root(ia) == s.root(ib), nil
}

// Contains reports whether v has been registered.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Size returns the number of disjoint components.
// Complexity: O(1).
func (s *Set[T]) Size() int { return len(s.roots) }

// Len returns the number of registered elements.
// Complexity: O(1).
func (s *Set[T]) Len() int { return len(s.nodes) }

// Representatives returns the representative value of every component, in the
// order the representatives were registered.
// Complexity: O(n).
func (s *Set[T]) Representatives() []T {
	out := make([]T, 0, len(s.roots))
	for i := range s.nodes {
		if _, ok := s.roots[i]; ok {
			out = append(out, s.nodes[i].value)
		}
	}

	return out
}

// Sets returns the members of every component. Components are ordered by
// their earliest-registered member and members keep registration order.
// Complexity: O(n·α(n)).
func (s *Set[T]) Sets() [][]T {
	slot := make(map[int]int, len(s.roots)) // root → position in out
	out := make([][]T, 0, len(s.roots))
	for i := range s.nodes {
		r := s.root(i)
		pos, ok := slot[r]
		if !ok {
			pos = len(out)
			slot[r] = pos
			out = append(out, nil)
		}
		out[pos] = append(out[pos], s.nodes[i].value)
	}

	return out
}

// Reset removes every element so the Set can be reused for an unrelated input.
func (s *Set[T]) Reset() {
	clear(s.index)
	clear(s.roots)
	s.nodes = s.nodes[:0]
}

// root returns the arena index of i's root, compressing the path.
// The first pass finds the root, the second re-points each visited node.
func (s *Set[T]) root(i int) int {
	r := i
	for s.nodes[r].parent != r {
		r = s.nodes[r].parent
	}
	for s.nodes[i].parent != r {
		next := s.nodes[i].parent
		s.nodes[i].parent = r
		i = next
	}

	return r
}
