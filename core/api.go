// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing read-only policy getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.
//   - Every exported function documents complexity and locking strategy.

package core

// NOTE: This file exposes a thin, well-documented public API facade
//       (read-only getters) on top of the core types. It intentionally
//       contains *no* algorithmic complexity or hidden state. All
//       operations are deterministic and concurrency-safe per the locking
//       model described in types.go (muVert, muEdgeAdj).

// Weighted reports the construction-time "weighted" capability flag.
// If false, AddEdge rejects non-zero weights with ErrBadWeight.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Weighted() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.weighted
}

// Directed reports the graph-wide default directedness applied to newly created edges.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}

// Looped reports whether self-loops (from==to) are permitted by policy.
// If false, AddEdge(v,v,...) rejects the operation with ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges between the same endpoints are permitted by policy.
// If false, AddEdge(from,to,...) rejects duplicates with ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Multigraph() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.allowMulti
}
