// SPDX-License-Identifier: MIT
package alloc

import "errors"

// ErrResourceExhausted is returned when an Allocator fails to satisfy a
// request. spmv maps this directly to its own ResourceExhausted error
// class.
var ErrResourceExhausted = errors.New("alloc: resource exhausted")

// Allocator produces a float64 buffer of length n, optionally hinting at
// the NUMA node to allocate from (node < 0 means "no preference").
// Implementations must return ErrResourceExhausted-wrapping errors on
// failure, never panic.
type Allocator interface {
	Float64s(n, node int) ([]float64, error)
}

// Func adapts a plain function into an Allocator.
type Func func(n, node int) ([]float64, error)

// Float64s implements Allocator.
func (f Func) Float64s(n, node int) ([]float64, error) { return f(n, node) }

// Default returns the platform's default Allocator: aligned/NUMA-aware
// where the OS supports it (see alloc_linux.go), a plain make() fallback
// otherwise (see alloc_other.go).
func Default() Allocator { return defaultAllocator{} }
