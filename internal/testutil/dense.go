// SPDX-License-Identifier: MIT
// Package testutil provides a small, independent reference implementation
// used only by tests, never by production code: a dense row-major matrix
// and a naive MulDense, so spmv's property tests can cross-check the
// merge-path result against something that doesn't share a single line of
// code with csr or mergepath.
package testutil

// DenseFromCSR expands a CSR-shaped triple into a flat row-major slice of
// length rows*cols, for use as an independent reference in tests. It does
// not depend on package csr so that a bug shared between csr.Matrix and
// this helper can't cancel out in a test.
func DenseFromCSR(rows, cols int, rowOffsets, columnIndices []int, values []float64) []float64 {
	dense := make([]float64, rows*cols)
	for row := 0; row < rows; row++ {
		for k := rowOffsets[row]; k < rowOffsets[row+1]; k++ {
			dense[row*cols+columnIndices[k]] += values[k]
		}
	}

	return dense
}

// MulDense computes y = A*x for a dense row-major matrix of the given
// shape, straightforwardly and sequentially. It is the reference that
// spmv.Run's merge-based result is checked against in property tests.
func MulDense(rows, cols int, dense, x []float64) []float64 {
	y := make([]float64, rows)
	for row := 0; row < rows; row++ {
		var sum float64
		for col := 0; col < cols; col++ {
			sum += dense[row*cols+col] * x[col]
		}
		y[row] = sum
	}

	return y
}
