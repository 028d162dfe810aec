package vecdist

import "github.com/hupe1980/vecdist/internal/simd"

// SquaredL2 computes the squared L2 distance between x[:d] and y[:d]
// and writes it to dis[0].
//
// The accumulation is chunked for instruction-level parallelism and is
// not bit-identical to a left-to-right scalar sum; differences are
// confined to floating-point reassociation.
func SquaredL2(x, y []float32, d int, dis []float32) error {
	if err := validatePair(x, y, d, dis); err != nil {
		return logReject("SquaredL2", err)
	}
	dis[0] = simd.SquaredL2(x, y, d)
	return nil
}

// InnerProduct computes the inner product of x[:d] and y[:d] and writes
// it to dis[0]. See SquaredL2 for the accumulation-order note.
func InnerProduct(x, y []float32, d int, dis []float32) error {
	if err := validatePair(x, y, d, dis); err != nil {
		return logReject("InnerProduct", err)
	}
	dis[0] = simd.InnerProduct(x, y, d)
	return nil
}

func validatePair(x, y []float32, d int, dis []float32) error {
	if err := checkDim(d); err != nil {
		return err
	}
	if err := checkBuffer("x", x, d); err != nil {
		return err
	}
	if err := checkBuffer("y", y, d); err != nil {
		return err
	}
	return checkBuffer("dis", dis, 1)
}
