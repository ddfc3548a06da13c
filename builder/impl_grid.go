// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_grid.go - Grid(rows, cols): orthogonal 4-neighborhood lattice.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows·cols ≥ 2 (else ErrTooFewVertices); a 1×1
//     grid has no edge to carry its single cell.
//   • Vertex IDs use the fixed coordinate scheme "r,c"; cfg.idFn is not consulted.
//   • For each (r,c) in row-major order emit Right (r,c+1) then Bottom (r+1,c)
//     where those neighbors exist.
//
// Complexity: O(rows·cols) time, O(1) extra space.
package builder

import (
	"fmt"

	"github.com/katalvlaran/spanning/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// GridID returns the vertex ID of cell (r, c) as emitted by Grid.
func GridID(r, c int) string {
	return fmt.Sprintf(gridIDFmt, r, c)
}

// Grid returns a Constructor that emits a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(sink *Edges, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d, at least 2 cells): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					*sink = append(*sink, graph.NewEdge(cfg.weight(), u, GridID(r, c+1)))
				}
				if r+1 < rows {
					*sink = append(*sink, graph.NewEdge(cfg.weight(), u, GridID(r+1, c)))
				}
			}
		}

		return nil
	}
}
