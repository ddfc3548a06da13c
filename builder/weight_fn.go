// Package builder provides helper functions and types
// for configuring edge-weight distributions in constructors.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
// Complexity: O(1). Never panics.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if min < 0 or max < min.
// If rng is nil, yields DefaultEdgeWeight.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntUniformWeightFn returns a WeightFn sampling whole numbers uniformly in
// [min, max]. Integral weights produce ties, which is what tie-breaking tests need.
// Panics if min < 0 or max < min. If rng is nil, yields DefaultEdgeWeight.
func IntUniformWeightFn(min, max int) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("IntUniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return float64(min + rng.Intn(max-min+1))
	}
}

// NormalWeightFn returns a WeightFn sampling from N(mean, stddev),
// rounded to the nearest integer and clipped at 0.
// Panics if stddev < 0. If rng is nil, yields DefaultEdgeWeight.
func NormalWeightFn(mean, stddev float64) WeightFn {
	if stddev < 0 {
		panic(fmt.Sprintf("NormalWeightFn: stddev must be ≥ 0, got %f", stddev))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		sample := rng.NormFloat64()*stddev + mean
		if sample < 0 {
			return 0
		}

		return math.Round(sample)
	}
}

// ExponentialWeightFn returns a WeightFn sampling from an exponential
// distribution with rate λ (mean 1/λ), rounded to the nearest integer.
// Panics if rate ≤ 0. If rng is nil, yields DefaultEdgeWeight.
func ExponentialWeightFn(rate float64) WeightFn {
	if rate <= 0 {
		panic(fmt.Sprintf("ExponentialWeightFn: rate must be > 0, got %f", rate))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}

		return math.Round(rng.ExpFloat64() / rate)
	}
}

// WithConstantWeight sets a fixed edge weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntWeight sets whole-number weights ∼ U{min..max} via IntUniformWeightFn.
func WithIntWeight(min, max int) BuilderOption {
	return WithWeightFn(IntUniformWeightFn(min, max))
}

// WithNormalWeight sets weights ∼ N(mean,stddev) via NormalWeightFn.
func WithNormalWeight(mean, stddev float64) BuilderOption {
	return WithWeightFn(NormalWeightFn(mean, stddev))
}

// WithExponentialWeight sets weights ∼ Exp(rate) via ExponentialWeightFn.
func WithExponentialWeight(rate float64) BuilderOption {
	return WithWeightFn(ExponentialWeightFn(rate))
}
