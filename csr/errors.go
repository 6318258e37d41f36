// SPDX-License-Identifier: MIT
// Package csr: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the csr
// package. All algorithms MUST return these sentinels and tests MUST check
// them via errors.Is. No algorithm should panic on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.
package csr

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "csr: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (the order in which the checks run):
// length mismatch -> row offsets not monotone -> column index out of range
// -> unknown vertex (FromGraph) -> umbrella ErrInvalidMatrix.

var (
	// ErrInvalidMatrix is the umbrella sentinel for any structural defect
	// detected by Validate: non-monotone row offsets, an out-of-range
	// column index, or a length mismatch between the three CSR arrays.
	// Validate always wraps the more specific structural sentinels below
	// with this one; Builder.Append returns ErrColumnIndexOutOfRange
	// unwrapped.
	ErrInvalidMatrix = errors.New("csr: invalid matrix")

	// ErrLengthMismatch indicates RowOffsets, ColumnIndices, or Values do
	// not agree with Rows/Cols/NNZ (e.g. len(RowOffsets) != Rows+1, or
	// len(ColumnIndices) != len(Values)).
	ErrLengthMismatch = errors.New("csr: length mismatch")

	// ErrRowOffsetsNotMonotone indicates RowOffsets is not non-decreasing,
	// or RowOffsets[0] != 0, or RowOffsets[Rows] != NNZ.
	ErrRowOffsetsNotMonotone = errors.New("csr: row offsets not monotone")

	// ErrColumnIndexOutOfRange indicates a ColumnIndices entry falls
	// outside [0, Cols).
	ErrColumnIndexOutOfRange = errors.New("csr: column index out of range")

	// ErrInvalidDimensions is returned when a requested matrix shape is
	// non-positive (rows <= 0 or cols <= 0).
	ErrInvalidDimensions = errors.New("csr: dimensions must be > 0")

	// ErrUnknownVertex indicates a FromGraph adapter referenced a vertex
	// ID that is not present in the source graph's vertex index.
	ErrUnknownVertex = errors.New("csr: unknown vertex id")

	// ErrGraphNil indicates a nil *core.Graph was passed to FromGraph.
	ErrGraphNil = errors.New("csr: graph is nil")
)
