// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} plus hub CenterVertexID.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices); the rim C_{n-1} needs at least 3 vertices.
//   • Emits the rim exactly as Cycle(n-1), then Center→rim spokes for
//     cfg.idFn(0..n-2).
//
// Complexity: O(n) time, O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that emits an n-vertex wheel.
func Wheel(n int) Constructor {
	return func(sink *Edges, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(sink, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}
		for i := 0; i < n-1; i++ {
			*sink = append(*sink, graph.NewEdge(cfg.weight(), CenterVertexID, cfg.idFn(i)))
		}

		return nil
	}
}
