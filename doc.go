// Package vecdist is the distance-computation engine for a dense-vector
// similarity index: inner-product and squared-Euclidean distances
// between one float32 query vector and large collections of stored
// vectors.
//
// The package exposes four layers of scan, from a single pair up to a
// segmented blocked-transposed snapshot:
//
//   - SquaredL2 / InnerProduct: one query against one database vector.
//   - SquaredL2NY / InnerProductNY: one query against ny contiguous
//     database vectors, dispatched through fixed-size batch kernels
//     (24/16/8/4/2/1 for L2, 16/8/4/2/1 for inner product).
//   - SquaredL2ByIDs / InnerProductByIDs: the same, but rows are
//     addressed through an id list (scatter-gather).
//   - Handle.Scan: M segments of ny vectors in a blocked-transposed
//     layout (block size 16, 32, or 64), one query per segment.
//
// Every entry point validates its inputs and returns an error instead
// of touching memory it should not: dimension or count out of range is
// ErrInvalidParam, a nil or undersized buffer is ErrInvalidBuffer, and
// a tail-block copy that would overflow is ErrUnsafeCopy. On any
// non-nil error the output buffer contents are unspecified and must be
// discarded.
//
// All functions are stateless and reentrant: nothing is allocated or
// mutated outside the buffers passed in, so concurrent calls on
// disjoint buffers are safe. Sharding a scan across goroutines is the
// caller's business; see cmd/vecdist-bench for one way to do it.
package vecdist
