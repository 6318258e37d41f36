// SPDX-License-Identifier: MIT
package csr

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mergespmv/core"
)

// defaultWeight is used for unweighted graphs when the Weighted option is
// not set.
const defaultWeight = 1.0

// GraphOptions configures FromGraph.
type GraphOptions struct {
	directed   bool
	weighted   bool
	allowLoops bool
}

// GraphOption mutates GraphOptions.
type GraphOption func(*GraphOptions)

// WithGraphDirected builds a directed adjacency (no mirroring of [u,v]
// into [v,u]).
func WithGraphDirected() GraphOption { return func(o *GraphOptions) { o.directed = true } }

// WithGraphWeighted preserves actual edge weights; otherwise every
// nonzero entry is defaultWeight.
func WithGraphWeighted() GraphOption { return func(o *GraphOptions) { o.weighted = true } }

// WithGraphLoops includes self-loop edges (from == to) on the diagonal.
func WithGraphLoops() GraphOption { return func(o *GraphOptions) { o.allowLoops = true } }

func gatherGraphOptions(opts ...GraphOption) GraphOptions {
	var o GraphOptions
	for _, set := range opts {
		set(&o)
	}

	return o
}

// lookupIndex returns the index for the given vertex key or ErrUnknownVertex.
func lookupIndex(idx map[string]int, key string) (int, error) {
	if i, ok := idx[key]; ok {
		return i, nil
	}

	return 0, fmt.Errorf("csr: FromGraph: unknown vertex %q: %w", key, ErrUnknownVertex)
}

// FromGraph adapts a core.Graph into a square CSR Matrix (one row/column
// per vertex, in core.Graph's deterministic Vertices() order). Edge
// weights are carried through when WithGraphWeighted is set; otherwise
// every present edge contributes defaultWeight. Undirected edges (the
// default) are mirrored into both (u,v) and (v,u), matching a dense
// adjacency adapter's semantics for the same source data.
//
// Stage 1 (Validate): reject a nil graph.
// Stage 2 (Prepare): snapshot vertices into a stable index map.
// Stage 3 (Execute): append one (or two, if mirrored) triplet per edge.
// Stage 4 (Finalize): freeze the Builder into a Matrix.
// Complexity: O(V + E log E).
func FromGraph(g *core.Graph, opts ...GraphOption) (*Matrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := gatherGraphOptions(opts...)

	vertices := g.Vertices() // deterministic, lexicographically sorted
	idx := make(map[string]int, len(vertices))
	for i, id := range vertices {
		idx[id] = i
	}

	b, err := NewBuilder(len(vertices), len(vertices))
	if err != nil {
		return nil, err
	}

	for _, edge := range g.Edges() {
		src, err := lookupIndex(idx, edge.From)
		if err != nil {
			return nil, err
		}
		dst, err := lookupIndex(idx, edge.To)
		if err != nil {
			return nil, err
		}
		if src == dst && !o.allowLoops {
			continue
		}

		var w float64
		if o.weighted {
			w = float64(edge.Weight)
		} else {
			w = defaultWeight
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("csr: FromGraph: edge %q: %w", edge.ID, ErrInvalidMatrix)
		}

		if err := b.Append(src, dst, w); err != nil {
			return nil, err
		}
		mirror := !o.directed && !edge.Directed && src != dst
		if mirror {
			if err := b.Append(dst, src, w); err != nil {
				return nil, err
			}
		}
	}

	return b.Build()
}
