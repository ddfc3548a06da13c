// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, n1, n2)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// *rand.Rand in the resolved configuration (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildEdges could not run a constructor
// (for example a nil Constructor in the list).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownTopology indicates that Topology was asked for a name it does not know.
var ErrUnknownTopology = errors.New("builder: unknown topology")
