// SPDX-License-Identifier: MIT
package mergepath

// Search locates the unique Coord at which diagonal d crosses the merge
// path of list A = rowOffsets[1:numRows+1] against list B = the identity
// sequence 0, 1, 2, … of length numNonzeros.
//
// It binary-searches x over [max(0, d-numNonzeros), min(d, numRows)] for
// the largest x_min such that, for every x' < x_min, rowOffsets[x'+1] <=
// d-x'-1. Because B is the identity sequence, no materialized array for
// it is needed — d-x'-1 stands in for B[d-x'-1] directly.
//
// Ties are broken by advancing along A (row events) first: when
// rowOffsets[x_pivot+1] <= d-x_pivot-1, the search contracts up A rather
// than up B, so a row's nonzeros are never split from its row-boundary
// event except at a partition seam.
//
// Search is pure, allocates nothing, and runs in O(log min(numRows,
// numNonzeros)).
func Search(d int, rowOffsets []int, numRows, numNonzeros int) Coord {
	xMin := max(d-numNonzeros, 0)
	xMax := min(d, numRows)

	for xMin < xMax {
		xPivot := (xMin + xMax) >> 1
		if rowOffsets[xPivot+1] <= d-xPivot-1 {
			xMin = xPivot + 1 // contract range up A (down B)
		} else {
			xMax = xPivot // contract range down A (up B)
		}
	}

	x := min(xMin, numRows)

	return Coord{X: x, Y: d - x}
}
