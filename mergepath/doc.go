// SPDX-License-Identifier: MIT
// Package mergepath implements the merge-path search and the partitioner
// used to load-balance CSR SpMV across a fixed number of workers.
//
// The merge path is the staircase through a conceptual 2-D grid formed by
// merging two sorted sequences: list A, the matrix's row-boundary offsets
// (RowOffsets[1:]), and list B, the identity sequence 0, 1, 2, … standing
// in for nonzero indices. Every diagonal x+y=d crosses this path at
// exactly one coordinate (Search); partitioning W workers means picking W
// equally spaced diagonals and searching each one (BuildPlan).
package mergepath
