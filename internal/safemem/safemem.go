// Package safemem provides capacity-checked copy and fill primitives.
//
// The segmented scan computes partial tail blocks into a scratch buffer
// and moves only the valid prefix into caller memory; these helpers are
// the single choke point where that move happens, so an undersized
// destination is always caught before any element is written.
package safemem

import "errors"

// ErrShortDst is returned when the destination cannot hold the source.
var ErrShortDst = errors.New("safemem: destination smaller than source")

// CheckAndCopy copies src into dst only if len(dst) >= len(src).
// On failure no element is copied.
func CheckAndCopy[T any](dst, src []T) error {
	if len(src) > len(dst) {
		return ErrShortDst
	}
	copy(dst, src)
	return nil
}

// CheckAndFill writes v into dst[0:n] only if len(dst) >= n.
// On failure no element is written.
func CheckAndFill[T any](dst []T, v T, n int) error {
	if n > len(dst) {
		return ErrShortDst
	}
	for i := 0; i < n; i++ {
		dst[i] = v
	}
	return nil
}
