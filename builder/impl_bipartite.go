// SPDX-License-Identifier: MIT
// Package: spanning/builder
//
// impl_bipartite.go - CompleteBipartite(n1,n2): K_{n1,n2}.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left IDs are "{leftPrefix}{i}", right IDs "{rightPrefix}{j}"; cfg.idFn
//     is not consulted. Prefixes come from WithPartitionPrefix ("L"/"R" by default).
//   • Emits every cross pair L_i→R_j, i asc then j asc.
//
// Complexity: O(n1·n2) time, O(n1+n2) extra space.
package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/spanning/graph"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(sink *Edges, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}

		right := make([]string, n2)
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
		}
		for i := 0; i < n1; i++ {
			u := cfg.leftPrefix + strconv.Itoa(i)
			for _, v := range right {
				*sink = append(*sink, graph.NewEdge(cfg.weight(), u, v))
			}
		}

		return nil
	}
}
