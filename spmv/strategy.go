// SPDX-License-Identifier: MIT
package spmv

// Strategy selects the per-worker inner-loop implementation used by Run.
// Both strategies are observationally equivalent: they produce the same
// y within floating-point summation order, and differ only in how the
// interior-row accumulation is expressed.
type Strategy int

const (
	// StrategyBaseline accumulates one nonzero at a time, re-checking the
	// current row's boundary on every element. This is the canonical,
	// default strategy.
	StrategyBaseline Strategy = iota

	// StrategyRunLength batches a worker's fully interior rows (rows that
	// start and end inside the worker's own slice) using the row's
	// precomputed length from RowOffsets, falling back to the baseline's
	// element-by-element accumulation for the leading and trailing rows
	// that are shared with a neighboring worker.
	StrategyRunLength
)

// String implements fmt.Stringer for use in log fields and test names.
func (s Strategy) String() string {
	switch s {
	case StrategyBaseline:
		return "baseline"
	case StrategyRunLength:
		return "run-length"
	default:
		return "unknown"
	}
}
