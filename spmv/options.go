// SPDX-License-Identifier: MIT
// Package spmv: functional configuration for Run and RunDefault.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals mirror the rest of this module's option surfaces:
// deterministic behavior (no package-level mutable globals, no implicit
// randomness), no dead switches, panic only on programmer error, and
// unexported Options fields so public APIs only ever consume ...Option.
package spmv

import (
	"runtime"

	"github.com/katalvlaran/mergespmv/internal/alloc"
	"github.com/katalvlaran/mergespmv/internal/telemetry"
)

const (
	panicWorkersInvalid   = "spmv: WithWorkers: workers must be > 0"
	panicAllocatorInvalid = "spmv: WithAllocator: allocator must not be nil"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error); Run/RunDefault never panic on caller data.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Unexported: public entry points accept ...Option and resolve
// it internally via gatherOptions.
type Options struct {
	workers   int
	strategy  Strategy
	allocator alloc.Allocator
	logger    *telemetry.Logger
}

// WithWorkers overrides the worker count RunDefault uses to build its own
// plan. Run sizes its carry-out scratch buffer from the plan it is given
// and does not read this option.
// Default: runtime.GOMAXPROCS(0), sampled fresh on every call.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithStrategy selects the per-worker inner-loop implementation. Default:
// StrategyBaseline.
func WithStrategy(s Strategy) Option {
	return func(o *Options) { o.strategy = s }
}

// WithAllocator supplies a custom Allocator for the carry-out scratch
// buffer, e.g. a NUMA-pinned one. Default: alloc.Default().
func WithAllocator(a alloc.Allocator) Option {
	if a == nil {
		panic(panicAllocatorInvalid)
	}

	return func(o *Options) { o.allocator = a }
}

// WithLogger attaches a structured logger. Default: telemetry.Discard().
func WithLogger(l *telemetry.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions applies user-provided Option setters on top of defaults
// and finalizes derived invariants. Canonical internal entry point for
// Run and RunDefault.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:   runtime.GOMAXPROCS(0),
		strategy:  StrategyBaseline,
		allocator: alloc.Default(),
		logger:    telemetry.Discard(),
	}
	for _, set := range user {
		set(&o)
	}

	finalizeOptions(&o)

	return o
}

// finalizeOptions enforces derived invariants in exactly one place: a nil
// allocator (possible only via a zero-value Options literal) or a nil
// logger (also reachable via WithLogger(nil)) is replaced with its
// default, and a non-positive worker count with runtime.GOMAXPROCS(0).
func finalizeOptions(o *Options) {
	if o.allocator == nil {
		o.allocator = alloc.Default()
	}
	if o.logger == nil {
		o.logger = telemetry.Discard()
	}
	if o.workers <= 0 {
		o.workers = runtime.GOMAXPROCS(0)
	}
}
