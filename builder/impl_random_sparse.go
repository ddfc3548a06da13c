// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p) edges.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng is required when 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and runs without one.
//   • Trials run over unordered pairs {i,j}, i<j, i asc then j asc. Each
//     accepted pair draws its weight right after its trial.
//   • Vertices that end up with no edge do not appear in the output: an edge
//     list cannot carry isolated vertices. Compose with Path(n) for a
//     connected fixture.
//
// Complexity: O(n²) trials, O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 2
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples each of the n(n-1)/2
// vertex pairs independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(sink *Edges, cfg builderConfig) error {
		// 1) Validate in priority order: size, probability, rng.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Bernoulli trial per unordered pair in a fixed order.
		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				if !accept(cfg, p) {
					continue
				}
				*sink = append(*sink, graph.NewEdge(cfg.weight(), u, cfg.idFn(j)))
			}
		}

		return nil
	}
}

// accept runs one trial. p ∈ {0,1} never consumes the rng.
func accept(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
