// SPDX-License-Identifier: MIT
// Package csr provides the immutable Compressed Sparse Row matrix view
// consumed by mergepath and spmv, plus two ways to build one:
//
//   - Builder, a COO-style incremental constructor (Append then Build),
//   - FromGraph, an adapter over a core.Graph's weighted edge set.
//
// A Matrix is read-only for the duration of any SpMV call; nothing in
// this package mutates RowOffsets, ColumnIndices, or Values in place
// after Build/FromGraph returns.
package csr
