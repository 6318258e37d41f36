// SPDX-License-Identifier: MIT
package csr

import "sort"

// entry is one (row, col, value) triplet appended to a Builder.
type entry struct {
	row, col int
	val      float64
}

// Builder accumulates (row, col, value) triplets and freezes them into an
// immutable Matrix. It is the COO-style counterpart to Matrix's CSR view:
// append entries in any order, call Build once.
//
// A Builder is not safe for concurrent use; build a Matrix first if it
// needs to be shared across goroutines (Matrix itself is read-only and
// safe to share once built).
type Builder struct {
	rows, cols int
	entries    []entry
}

// NewBuilder allocates a Builder for an rows×cols matrix.
// Complexity: O(1).
func NewBuilder(rows, cols int) (*Builder, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Builder{rows: rows, cols: cols}, nil
}

// Append records one nonzero at (row, col) with the given value.
// Duplicate (row, col) pairs are both kept and summed at Build time,
// matching the accumulate-on-append convention of a triplet/COO matrix.
// Complexity: O(1) amortized.
func (b *Builder) Append(row, col int, value float64) error {
	if row < 0 || row >= b.rows {
		return ErrColumnIndexOutOfRange // row bound violated; same sentinel family
	}
	if col < 0 || col >= b.cols {
		return ErrColumnIndexOutOfRange
	}
	b.entries = append(b.entries, entry{row: row, col: col, val: value})

	return nil
}

// Build freezes the accumulated triplets into a row-major CSR Matrix.
// Duplicate (row, col) entries are summed. Within each row, entries are
// sorted by column ascending — a convenience for callers who want sorted
// output; nothing downstream requires it, and a Matrix built any other way
// need not be sorted.
// Complexity: O(NNZ log NNZ).
func (b *Builder) Build() (*Matrix, error) {
	// Stage 1: sort by (row, col) so duplicates become adjacent and
	// each row's entries land in column order.
	sorted := make([]entry, len(b.entries))
	copy(sorted, b.entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].row != sorted[j].row {
			return sorted[i].row < sorted[j].row
		}
		return sorted[i].col < sorted[j].col
	})

	// Stage 2: merge adjacent duplicates and emit CSR arrays.
	rowOffsets := make([]int, b.rows+1)
	columnIndices := make([]int, 0, len(sorted))
	values := make([]float64, 0, len(sorted))

	row := 0
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j].row == sorted[i].row && sorted[j].col == sorted[i].col {
			j++
		}
		var sum float64
		for k := i; k < j; k++ {
			sum += sorted[k].val
		}

		for row < sorted[i].row {
			rowOffsets[row+1] = len(columnIndices)
			row++
		}
		columnIndices = append(columnIndices, sorted[i].col)
		values = append(values, sum)

		i = j
	}
	for row < b.rows {
		rowOffsets[row+1] = len(columnIndices)
		row++
	}

	return New(b.rows, b.cols, rowOffsets, columnIndices, values)
}
