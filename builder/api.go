// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildEdges(bopts, cons...). Resolves cfg, runs cons in
//     order against one shared edge list.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value.
//   - Determinism: same options, seed and constructor order ⇒ identical edge lists.
//   - Constructors never panic; they return sentinel errors wrapped with context.
//
// Composition: constructors share the ID space produced by cfg.idFn, so
// BuildEdges(opts, Path(n), RandomSparse(n, p)) overlays random chords on a
// spanning path and is therefore always connected.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/graph"
)

// Edges is the fixture type produced by every constructor.
type Edges = []graph.Edge[string, float64]

// Constructor appends edges to sink using the resolved builderConfig.
// Constructors validate parameters before emitting anything.
type Constructor func(sink *Edges, cfg builderConfig) error

// BuildEdges resolves the builder configuration from bopts and applies all
// constructors in order to a single edge list.
//
// Errors:
//   - A nil constructor → ErrConstructFailed.
//   - Any constructor error is wrapped as "BuildEdges: %w" and returned
//     immediately; no partial result is returned.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (Edges, error) {
	cfg := newBuilderConfig(bopts...)
	edges := make(Edges, 0)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildEdges: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&edges, cfg); err != nil {
			return nil, fmt.Errorf("BuildEdges: %w", err)
		}
	}

	return edges, nil
}

// Topology names accepted by Topology.
const (
	TopologyPath      = "path"
	TopologyCycle     = "cycle"
	TopologyStar      = "star"
	TopologyWheel     = "wheel"
	TopologyComplete  = "complete"
	TopologyGrid      = "grid"
	TopologyBipartite = "bipartite"
	TopologyRandom    = "random"
)

// Shape carries the size parameters of a named topology.
// Only the fields relevant to the chosen topology are read.
type Shape struct {
	N     int     // vertex count (path, cycle, star, wheel, complete, random)
	Rows  int     // grid rows
	Cols  int     // grid cols
	Left  int     // bipartite left partition size
	Right int     // bipartite right partition size
	P     float64 // chord probability (random)
}

// Topology resolves a topology name to its constructors. "random" expands to
// Path(N) followed by RandomSparse(N, P), which keeps the fixture connected.
func Topology(name string, s Shape) ([]Constructor, error) {
	switch name {
	case TopologyPath:
		return []Constructor{Path(s.N)}, nil
	case TopologyCycle:
		return []Constructor{Cycle(s.N)}, nil
	case TopologyStar:
		return []Constructor{Star(s.N)}, nil
	case TopologyWheel:
		return []Constructor{Wheel(s.N)}, nil
	case TopologyComplete:
		return []Constructor{Complete(s.N)}, nil
	case TopologyGrid:
		return []Constructor{Grid(s.Rows, s.Cols)}, nil
	case TopologyBipartite:
		return []Constructor{CompleteBipartite(s.Left, s.Right)}, nil
	case TopologyRandom:
		return []Constructor{Path(s.N), RandomSparse(s.N, s.P)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
	}
}
