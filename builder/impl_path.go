// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_path.go - Path(n): the simple path P_n.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices); P_1 has no edge to carry its vertex.
//   • Emits i→i+1 for i = 0..n-2 with IDs from cfg.idFn.
//   • One weight draw per edge, in emission order.
//
// Complexity: O(n) time, O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that emits a simple path over n vertices.
func Path(n int) Constructor {
	return func(sink *Edges, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			*sink = append(*sink, graph.NewEdge(cfg.weight(), cfg.idFn(i), cfg.idFn(i+1)))
		}

		return nil
	}
}
