// Package disjointset provides a generic disjoint-set forest (union-find) over
// comparable payloads.
//
// What & Why
//
//   - A disjoint-set forest partitions a collection of elements into disjoint
//     equivalence classes. Each class is a tree whose root is the class's
//     canonical representative.
//
//   - It answers "are a and b in the same component?" in amortized
//     near-constant time, which is what Kruskal's MST algorithm needs to
//     reject cycle-forming edges.
//
// Operations
//
//   - MakeSet(v)      registers v as a new singleton component.
//   - Union(a, b)     merges the components of a and b (union by rank).
//   - Find(v)         returns the representative of v's component (path compression).
//   - Size()          number of disjoint components.
//   - Representatives current component roots, in registration order.
//
// Union by rank
//
//	Both operands are resolved to their roots first. With equal ranks the root
//	of b is attached under the root of a and a's rank grows by one; otherwise
//	the root with the smaller rank is attached under the other and no rank
//	changes. Union on two values already in the same component does nothing.
//
// Path compression
//
//	Find walks from the node to its root, then walks the same path a second
//	time re-pointing every visited node directly at the root. The walk is
//	iterative, so stack usage does not depend on the depth of the tree.
//
// Complexity
//
//   - n MakeSet and m Union/Find calls run in O((n + m)·α(n)) total time,
//     α being the inverse Ackermann function.
//   - Memory: O(n).
//
// Errors
//
//   - ErrNotFound: Union, Find or Connected referenced a value never passed to MakeSet.
//
// Concurrency
//
//	A Set is not safe for concurrent mutation. Callers sharing one across
//	goroutines must serialize access themselves.
package disjointset
