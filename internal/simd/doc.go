// Package simd provides the distance kernels behind the vecdist public
// API.
//
// # Kernel shape
//
// All kernels are portable Go written in an autovectorization-friendly
// shape: fixed small batch sizes, independent accumulator chains, and
// loop bodies free of calls so the compiler can keep the accumulators
// in registers. The batch-size ladder (24/16/8/4/2/1 for squared L2,
// 16/8/4/2/1 for inner product) and the blocked transposed layout used
// by the handle scan are the load-amortization contracts inherited from
// the reference kernels; the per-instruction details are left to the
// compiler.
//
// # Selection
//
// Two kernel sets exist: the batched set (default) and a naive scalar
// reference set. Set VECDIST_KERNEL=scalar to force the reference set,
// e.g. to bisect a precision question. The batched set reassociates
// floating-point addition, so results differ from a left-to-right sum
// in the last bits; this is accepted and covered by tolerance-based
// tests.
//
// # Safety
//
// Kernels trust their callers. Shape validation happens once at the
// public vecdist entry points; everything in this package assumes
// in-range dimensions and correctly sized buffers.
package simd
