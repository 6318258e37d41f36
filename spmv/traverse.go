// SPDX-License-Identifier: MIT
package spmv

import (
	"github.com/katalvlaran/mergespmv/csr"
	"github.com/katalvlaran/mergespmv/mergepath"
)

// traverseWorker walks one worker's slice of the merge path, [start, end),
// writing y for every row whose row-end event lies within the slice and
// returning the row and partial sum for the row left unfinished at the
// slice's end. The returned row is always end.X (numRows for the slice
// that ends the merge list); the returned sum is 0 when the slice
// consumed no nonzero of that row, so it carries nothing forward.
func traverseWorker(a *csr.Matrix, x, y []float64, start, end mergepath.Coord, strategy Strategy) (row int, carry float64) {
	switch strategy {
	case StrategyRunLength:
		return traverseRunLength(a, x, y, start, end)
	default:
		return traverseBaseline(a, x, y, start, end)
	}
}

// traverseBaseline is the canonical row-by-row consumption: one nonzero
// at a time, re-deriving the current row's end offset on every element.
func traverseBaseline(a *csr.Matrix, x, y []float64, start, end mergepath.Coord) (row int, running float64) {
	row, nz := start.X, start.Y

	for row < end.X || (row == end.X && nz < end.Y) {
		rowEnd := a.RowOffsets[row+1]
		if nz < rowEnd {
			running += a.Values[nz] * x[a.ColumnIndices[nz]]
			nz++
		} else {
			y[row] = running
			running = 0
			row++
		}
	}

	return row, running
}

// traverseRunLength batches every row that starts and ends strictly
// inside this worker's slice, summing it in one pass over its known
// length (RowOffsets[row+1]-RowOffsets[row]) instead of re-testing the
// merge-path boundary per element. The leading row (if carried in from
// the previous worker) and the trailing row (shared with the next
// worker) still fall back to element-by-element accumulation, since
// their true extent isn't known until a neighbor's slice is accounted
// for.
func traverseRunLength(a *csr.Matrix, x, y []float64, start, end mergepath.Coord) (row int, running float64) {
	row, nz := start.X, start.Y

	for row < end.X {
		rowStart, rowEnd := a.RowOffsets[row], a.RowOffsets[row+1]

		if nz == rowStart {
			for k := rowStart; k < rowEnd; k++ {
				running += a.Values[k] * x[a.ColumnIndices[k]]
			}
			nz = rowEnd
		} else {
			for nz < rowEnd {
				running += a.Values[nz] * x[a.ColumnIndices[nz]]
				nz++
			}
		}

		y[row] = running
		running = 0
		row++
	}

	for nz < end.Y {
		running += a.Values[nz] * x[a.ColumnIndices[nz]]
		nz++
	}

	return row, running
}
