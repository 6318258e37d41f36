// SPDX-License-Identifier: MIT
// Package spmv: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// spmv package. All algorithms MUST return these sentinels and tests MUST
// check them via errors.Is. No algorithm should panic on user-triggered
// error conditions; panics are reserved for programmer errors in Option
// constructors.
package spmv

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "spmv: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when
// returning directly; if context is essential, wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary — callers will still
// use errors.Is to match.

var (
	// ErrInvalidDimensions indicates a nil matrix, or that len(x) !=
	// A.Cols or len(y) != A.Rows.
	ErrInvalidDimensions = errors.New("spmv: dimensions must match matrix shape")

	// ErrResourceExhausted indicates the configured Allocator failed to
	// satisfy a request for carry-out scratch space.
	ErrResourceExhausted = errors.New("spmv: resource exhausted")
)
