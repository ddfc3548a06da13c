// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn        ("0","1","2",...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn    (every edge weighs DefaultEdgeWeight)
//   • left/right  = "L" / "R"
package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn

	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand

	// Weight generator, called once per emitted edge.
	weightFn WeightFn

	// Bipartite ID prefixes (left/right).
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier). Empty bipartite prefixes are
// resolved to defaults here so constructors stay branch-free.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		rng:         nil,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 {
	return c.weightFn(c.rng)
}
