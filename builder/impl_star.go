// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_star.go - Star(n): hub CenterVertexID with n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Leaves are cfg.idFn(1..n-1); index 0 is the hub, which always carries
//     the fixed ID CenterVertexID.
//   • Emits Center→leaf spokes in ascending leaf index.
//
// Complexity: O(n) time, O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/graph"
)

// CenterVertexID is the hub of Star and Wheel.
const CenterVertexID = "Center"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that emits a star with n vertices.
func Star(n int) Constructor {
	return func(sink *Edges, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			*sink = append(*sink, graph.NewEdge(cfg.weight(), CenterVertexID, cfg.idFn(i)))
		}

		return nil
	}
}
