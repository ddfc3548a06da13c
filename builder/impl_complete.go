// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_complete.go - Complete(n): K_n.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, in lexicographic order.
//
// Complexity: O(n²) time, O(n) extra space for the ID cache.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns a Constructor that emits the complete graph on n vertices.
func Complete(n int) Constructor {
	return func(sink *Edges, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids := make([]string, n)
		for i := range ids {
			ids[i] = cfg.idFn(i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				*sink = append(*sink, graph.NewEdge(cfg.weight(), ids[i], ids[j]))
			}
		}

		return nil
	}
}
