// SPDX-License-Identifier: MIT
package mergepath

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// BuildPlan produces a Plan tiling the merge list [0, numRows+numNonzeros)
// into `workers` contiguous slices that differ in length by at most one.
//
// With q = total / workers and r = total % workers, the first r workers
// get q+1 diagonals and the rest get q: worker t's slice starts at
// diagonal t*q + min(t, r). If numRows+numNonzeros < workers, trailing
// workers receive empty slices pinned at (numRows, numNonzeros). If workers == 1, the
// plan degenerates to the single slice ((0,0), (numRows, numNonzeros)).
//
// Each worker's pair of searches (start, end) is independent of every
// other worker's, so they run concurrently under one errgroup.Group; that
// group's Wait() is the barrier that must complete before traversal may
// begin. BuildPlan is pure otherwise: it does not touch column indices or
// values, only rowOffsets.
func BuildPlan(ctx context.Context, numRows, numNonzeros, workers int, rowOffsets []int) (Plan, error) {
	if workers < 1 {
		workers = 1
	}

	total := numRows + numNonzeros
	itemsPerWorker, remainder := total/workers, total%workers

	plan := Plan{
		Starts: make([]Coord, workers),
		Ends:   make([]Coord, workers),
	}

	if workers == 1 {
		plan.Starts[0] = Coord{0, 0}
		plan.Ends[0] = Coord{numRows, numNonzeros}

		return plan, nil
	}

	g, _ := errgroup.WithContext(ctx)
	for t := 0; t < workers; t++ {
		t := t
		g.Go(func() error {
			startDiagonal := t*itemsPerWorker + min(t, remainder)
			endDiagonal := startDiagonal + itemsPerWorker
			if t < remainder {
				endDiagonal++
			}

			plan.Starts[t] = Search(startDiagonal, rowOffsets, numRows, numNonzeros)
			plan.Ends[t] = Search(endDiagonal, rowOffsets, numRows, numNonzeros)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Plan{}, err
	}

	return plan, nil
}
