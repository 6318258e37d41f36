// SPDX-License-Identifier: MIT
package spmv

import "github.com/katalvlaran/mergespmv/csr"

// carryStride is the number of float64 slots reserved per worker in the
// carry-out value buffer: one cache line's worth, so adjacent workers'
// slots never share a line.
const carryStride = 64 / 8 // alloc.CacheLineSize / sizeof(float64)

// reduceCarryOuts folds each worker's unfinished partial-row sum back
// into y, sequentially, after the traversal region's barrier. carryRows[t]
// is the row traverseWorker left unfinished for worker t; carryValues is
// the stride-separated buffer traverseWorker wrote its partial sum into.
//
// A carry contributes to y only when its row is still inside the matrix:
// the last worker's slice always ends exactly at numRows, leaving nothing
// to carry forward. A worker whose slice begins and ends on the same row
// boundary (an empty slice, or one spanning only whole rows) carries 0,
// which is a harmless no-op add.
func reduceCarryOuts(a *csr.Matrix, y []float64, carryRows []int, carryValues []float64) {
	for t, row := range carryRows {
		if row < a.Rows {
			y[row] += carryValues[t*carryStride]
		}
	}
}
