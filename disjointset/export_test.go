package disjointset

// Test bridge: exposes the raw parent pointer and rank of a value so
// disjointset_test can verify path compression and union-by-rank without
// widening the package API.

// ParentOf returns the value v's node currently points at, without compressing.
func (s *Set[T]) ParentOf(v T) (T, bool) {
	i, ok := s.index[v]
	if !ok {
		var zero T
		return zero, false
	}

	return s.nodes[s.nodes[i].parent].value, true
}

// RankOf returns the stored rank of v's node.
func (s *Set[T]) RankOf(v T) (int, bool) {
	i, ok := s.index[v]
	if !ok {
		return 0, false
	}

	return s.nodes[i].rank, true
}

// Link attaches child's node directly under parent's node, bypassing rank
// rules, so tests can build deep chains.
func (s *Set[T]) Link(child, parent T) {
	ci, pi := s.index[child], s.index[parent]
	if s.nodes[ci].parent == ci && ci != pi {
		delete(s.roots, ci)
	}
	s.nodes[ci].parent = pi
}
