// Package mergespmv is a benchmark harness for sparse matrix–vector
// multiplication (SpMV) over matrices in Compressed Sparse Row (CSR) form.
//
// 🚀 What is mergespmv?
//
//	A data-parallel, fork-join SpMV kernel built around the merge-path
//	partitioning scheme: the nonzeros and row boundaries of a CSR matrix
//	are treated as a single virtual "merge list", and a binary search
//	(mergepath.Search) locates exactly where each worker's equal-sized
//	slice begins and ends — regardless of how unevenly nonzeros are
//	distributed across rows.
//
// Under the hood, everything is organized into:
//
//	csr/              — the immutable CSR matrix view, a COO builder, and a
//	                     core.Graph adapter
//	mergepath/        — the merge-path binary search and the partitioner
//	spmv/             — the per-worker traversal, the carry-out reducer,
//	                     and the Run/RunDefault driver
//	core/             — the in-memory graph type consumed by csr.FromGraph
//	internal/alloc/   — NUMA-aware / cache-line-aligned buffer allocation
//	internal/telemetry/ — structured logging for the driver
//	internal/diag/    — optional load-balance chart rendering
//	internal/testutil/ — a second, independently-coded dense reference
//	                     implementation used by property tests
//
// ✨ Why merge-based partitioning?
//
//   - Balanced by construction – every worker's merge-list slice differs
//     in length by at most one element, even with a single row holding
//     most of the matrix's nonzeros.
//   - No atomics, no locks – each worker owns a disjoint row range of the
//     output vector; rows spanning a worker boundary are fixed up by a
//     single sequential carry-out reducer pass.
//   - Deterministic – for a fixed matrix, vector, and worker count, the
//     same partition plan produces bit-identical output on every call.
//
// Quick shape:
//
//	plan, _  := mergepath.BuildPlan(ctx, a.Rows, a.NNZ, workers, a.RowOffsets)
//	err      := spmv.Run(ctx, a, x, y, plan)
//
// See SPEC_FULL.md and DESIGN.md at the repository root for the full
// component breakdown and the grounding behind each package.
package mergespmv
