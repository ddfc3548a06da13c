// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"cmp"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/spanning/graph"
)

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all nodes cannot be formed. No partial tree is returned.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrStartNotFound indicates that the start node requested for Prim is not an
// endpoint of any input edge.
var ErrStartNotFound = errors.New("prim_kruskal: start node not found")

// ErrNilComparator indicates that a builder was constructed without a weight comparator.
var ErrNilComparator = errors.New("prim_kruskal: weight comparator is nil")

// ErrUnknownMethod indicates that Compute was asked for an algorithm it does not know.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// MethodPrim selects Prim's algorithm (grow from a start node using a min-heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (cheapest edges first, union-find).
const MethodKruskal = "kruskal"

// Builder is implemented by both MST algorithms.
type Builder[T comparable, W any] interface {
	// BuildMST returns the edges of a minimum spanning tree.
	BuildMST() ([]graph.Edge[T, W], error)
}

// Compare orders two weights: negative if a < b, zero if equal, positive if a > b.
type Compare[W any] func(a, b W) int

// Ascending is the natural order of W.
func Ascending[W cmp.Ordered](a, b W) int { return cmp.Compare(a, b) }

// Descending inverts compare. Feeding it to either builder yields a maximum
// spanning tree instead of a minimum one.
func Descending[W any](compare Compare[W]) Compare[W] {
	return func(a, b W) int { return compare(b, a) }
}

// MSTOptions configures which MST algorithm to run, and for Prim, which start node to use.
// Use DefaultOptions() to get a default setup (Kruskal, no logging).
//
// Fields:
//
//	Method string      - one of MethodPrim or MethodKruskal.
//	Start  any         - start payload for Prim; nil means the first node in input order.
//	Logger *zap.Logger - receives Debug records for every edge decision.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Start is the seed node payload for Prim's algorithm. Unused by Kruskal.
	Start any

	// Logger receives per-edge Debug records. Never nil after option resolution.
	Logger *zap.Logger
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
// Allowed values: MethodPrim, MethodKruskal.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithStart returns an Option that sets the start node payload for Prim; Kruskal ignores it.
// The value must have the same type as the edge payloads.
func WithStart(start any) Option {
	return func(opts *MSTOptions) {
		opts.Start = start
	}
}

// WithLogger returns an Option that routes edge decisions to l. A nil l keeps logging off.
func WithLogger(l *zap.Logger) Option {
	return func(opts *MSTOptions) {
		if l != nil {
			opts.Logger = l
		}
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal by default:
//
//	– Method = MethodKruskal
//	– Start  = nil (ignored by Kruskal)
//	– Logger = zap.NewNop()
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Start:  nil,
		Logger: zap.NewNop(),
	}
}

func resolveOptions(opts []Option) MSTOptions {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on the resolved Method.
//
//	– MethodKruskal: NewKruskal(edges, compare, opts...).BuildMST().
//	– MethodPrim:    NewPrim(edges, compare, opts...), seeded at Start if set.
//	– Otherwise:     ErrUnknownMethod.
//
// A Start whose dynamic type is not T is reported as ErrStartNotFound.
func Compute[T comparable, W any](edges []graph.Edge[T, W], compare Compare[W], opts ...Option) ([]graph.Edge[T, W], error) {
	o := resolveOptions(opts)
	switch o.Method {
	case MethodKruskal:
		return NewKruskal(edges, compare, opts...).BuildMST()
	case MethodPrim:
		p := NewPrim(edges, compare, opts...)
		if o.Start == nil {
			return p.BuildMST()
		}
		start, ok := o.Start.(T)
		if !ok {
			var zero T
			return nil, fmt.Errorf("%w: %v is %T, want %T", ErrStartNotFound, o.Start, o.Start, zero)
		}

		return p.BuildMSTFrom(start)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// disconnected wraps ErrDisconnected with the selected and required edge counts.
func disconnected(selected, nodes int) error {
	return fmt.Errorf("%w: selected %d of %d edges over %d nodes", ErrDisconnected, selected, nodes-1, nodes)
}
