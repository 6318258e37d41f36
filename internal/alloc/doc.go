// SPDX-License-Identifier: MIT
// Package alloc provides pluggable, NUMA-aware buffer allocation for
// spmv: prefer the NUMA node of the first worker when available,
// otherwise fall back to a cache-line-aligned heap allocation, with
// alignment at least the target SIMD width.
package alloc

// CacheLineSize is the alignment used for carry-out scratch and for the
// Linux-specific aligned allocator below; it is also at least as wide as
// AVX2's 32-byte vector width and AVX-512's 64-byte width, so a single
// alignment serves both the cache-line and SIMD-width requirements.
const CacheLineSize = 64
