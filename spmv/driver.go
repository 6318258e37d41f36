// SPDX-License-Identifier: MIT
package spmv

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mergespmv/csr"
	"github.com/katalvlaran/mergespmv/mergepath"
)

// Run computes y = A*x using a precomputed partition plan. x must have
// length A.Cols, y must have length A.Rows; both are validated at entry,
// before any errgroup goroutine starts. y's contents are unspecified if
// Run returns an error.
//
// Implementation: one errgroup.Group goroutine per plan worker runs
// traverseWorker over its own [Starts[t], Ends[t]) slice, writing only to
// its own rows of y and its own slot of the carry-out scratch buffer.
// g.Wait() is the barrier before reduceCarryOuts runs sequentially.
func Run(ctx context.Context, a *csr.Matrix, x, y []float64, plan mergepath.Plan, opts ...Option) error {
	if a == nil {
		return fmt.Errorf("spmv: nil matrix: %w", ErrInvalidDimensions)
	}
	if err := a.Validate(); err != nil {
		return err
	}
	if len(x) != a.Cols {
		return fmt.Errorf("spmv: len(x)=%d != Cols=%d: %w", len(x), a.Cols, ErrInvalidDimensions)
	}
	if len(y) != a.Rows {
		return fmt.Errorf("spmv: len(y)=%d != Rows=%d: %w", len(y), a.Rows, ErrInvalidDimensions)
	}

	o := gatherOptions(opts...)
	workers := plan.Workers()

	carryRows := make([]int, workers)
	carryValues, err := o.allocator.Float64s(workers*carryStride, -1)
	if err != nil {
		wrapped := fmt.Errorf("spmv: allocate carry-out scratch: %w: %w", err, ErrResourceExhausted)
		o.logger.RunFailed(wrapped)

		return wrapped
	}

	var failed atomic.Bool
	g, gctx := errgroup.WithContext(ctx)
	for t := 0; t < workers; t++ {
		t := t
		g.Go(func() error {
			if failed.Load() {
				return nil
			}
			select {
			case <-gctx.Done():
				failed.Store(true)
				return gctx.Err()
			default:
			}

			row, carry := traverseWorker(a, x, y, plan.Starts[t], plan.Ends[t], o.strategy)
			carryRows[t] = row
			carryValues[t*carryStride] = carry

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		o.logger.RunFailed(err)
		return err
	}

	reduceCarryOuts(a, y, carryRows, carryValues)
	o.logger.RunCompleted(workers, a.Rows, a.NNZ, o.strategy.String())

	return nil
}

// RunDefault builds a partition plan for GOMAXPROCS(0) workers (override
// with WithWorkers), runs Run, and discards the plan. Use BuildPlan and
// Run directly when the same plan will be reused across several calls.
func RunDefault(ctx context.Context, a *csr.Matrix, x, y []float64, opts ...Option) error {
	if a == nil {
		return fmt.Errorf("spmv: nil matrix: %w", ErrInvalidDimensions)
	}
	if err := a.Validate(); err != nil {
		return err
	}

	o := gatherOptions(opts...)
	plan, err := mergepath.BuildPlan(ctx, a.Rows, a.NNZ, o.workers, a.RowOffsets)
	if err != nil {
		return err
	}
	o.logger.PlanBuilt(o.workers, a.Rows, a.NNZ)

	return Run(ctx, a, x, y, plan, opts...)
}
