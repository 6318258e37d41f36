// SPDX-License-Identifier: MIT
package csr

import "fmt"

// Matrix is an immutable Compressed Sparse Row view of an R×C sparse
// matrix with NNZ nonzeros.
//
// RowOffsets has length Rows+1: the nonzeros of row i occupy indices
// [RowOffsets[i], RowOffsets[i+1]) of ColumnIndices and Values. Entries
// within a row need not be sorted by column, but ColumnIndices and Values
// must agree on ordering — unsorted rows are accepted.
//
// A Matrix is read-only for the duration of any SpMV call; callers must
// not mutate RowOffsets, ColumnIndices, or Values while a call using this
// Matrix is in flight.
type Matrix struct {
	Rows, Cols, NNZ int

	RowOffsets    []int
	ColumnIndices []int
	Values        []float64
}

// New wraps the three CSR arrays into a Matrix and validates them.
// Stage 1 (Validate): dimensions must be positive.
// Stage 2 (Wrap): assemble the Matrix value.
// Stage 3 (Validate): structural invariants via Validate().
// Complexity: O(Rows + NNZ).
func New(rows, cols int, rowOffsets, columnIndices []int, values []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	m := &Matrix{
		Rows:          rows,
		Cols:          cols,
		NNZ:           len(values),
		RowOffsets:    rowOffsets,
		ColumnIndices: columnIndices,
		Values:        values,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate checks the structural invariants of a CSR matrix: RowOffsets has
// length Rows+1, starts at 0 and ends at NNZ, is non-decreasing; ColumnIndices
// and Values agree in length; every column index lies in [0, Cols).
//
// This is the single place invalid-matrix conditions are detected — no
// detection happens inside the traversal hot path.
// Complexity: O(Rows + NNZ).
func (m *Matrix) Validate() error {
	if m == nil {
		return fmt.Errorf("csr: nil matrix: %w", ErrInvalidMatrix)
	}
	if len(m.ColumnIndices) != len(m.Values) {
		return fmt.Errorf("csr: len(ColumnIndices)=%d != len(Values)=%d: %w: %w",
			len(m.ColumnIndices), len(m.Values), ErrLengthMismatch, ErrInvalidMatrix)
	}
	if len(m.RowOffsets) != m.Rows+1 {
		return fmt.Errorf("csr: len(RowOffsets)=%d != Rows+1=%d: %w: %w",
			len(m.RowOffsets), m.Rows+1, ErrLengthMismatch, ErrInvalidMatrix)
	}
	if len(m.Values) != m.NNZ {
		return fmt.Errorf("csr: len(Values)=%d != NNZ=%d: %w: %w",
			len(m.Values), m.NNZ, ErrLengthMismatch, ErrInvalidMatrix)
	}

	if m.RowOffsets[0] != 0 {
		return fmt.Errorf("csr: RowOffsets[0]=%d != 0: %w: %w", m.RowOffsets[0], ErrRowOffsetsNotMonotone, ErrInvalidMatrix)
	}
	if m.RowOffsets[m.Rows] != m.NNZ {
		return fmt.Errorf("csr: RowOffsets[Rows]=%d != NNZ=%d: %w: %w",
			m.RowOffsets[m.Rows], m.NNZ, ErrRowOffsetsNotMonotone, ErrInvalidMatrix)
	}
	for i := 1; i <= m.Rows; i++ {
		if m.RowOffsets[i] < m.RowOffsets[i-1] {
			return fmt.Errorf("csr: RowOffsets[%d]=%d < RowOffsets[%d]=%d: %w: %w",
				i, m.RowOffsets[i], i-1, m.RowOffsets[i-1], ErrRowOffsetsNotMonotone, ErrInvalidMatrix)
		}
	}

	for k, col := range m.ColumnIndices {
		if col < 0 || col >= m.Cols {
			return fmt.Errorf("csr: ColumnIndices[%d]=%d out of [0,%d): %w: %w",
				k, col, m.Cols, ErrColumnIndexOutOfRange, ErrInvalidMatrix)
		}
	}

	return nil
}

// RowRange returns the [start, end) slice bounds into ColumnIndices and
// Values for the given row.
// Complexity: O(1).
func (m *Matrix) RowRange(row int) (start, end int) {
	return m.RowOffsets[row], m.RowOffsets[row+1]
}
