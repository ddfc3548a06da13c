// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_cycle.go - Cycle(n): the ring C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits i→(i+1) mod n in ascending i; the last edge closes the ring.
//
// Complexity: O(n) time, O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that emits an n-vertex ring.
func Cycle(n int) Constructor {
	return func(sink *Edges, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			*sink = append(*sink, graph.NewEdge(cfg.weight(), cfg.idFn(i), cfg.idFn((i+1)%n)))
		}

		return nil
	}
}
