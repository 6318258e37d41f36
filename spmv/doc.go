// SPDX-License-Identifier: MIT
// Package spmv implements merge-based parallel sparse matrix-vector
// multiplication (y = A*x) over a csr.Matrix, given a partition plan from
// package mergepath.
//
// Run splits into two regions separated by a barrier: a traversal region,
// one errgroup goroutine per worker, each consuming its own slice of the
// merge path and writing only to its own rows of y and its own carry-out
// slot; and a sequential reduction that folds carry-outs for rows split
// across a worker boundary back into y. Neither region touches a
// worker's neighbors' memory.
package spmv
