package vecdist

import "github.com/hupe1980/vecdist/internal/simd"

// SquaredL2ByIDs computes squared L2 distances between x[:d] and the ny
// database rows selected by ids, writing dis[0:ny]. Row i lives at
// y[ids[i]*d : ids[i]*d+d]; ids may be unordered and non-contiguous.
//
// Each batch group's rows are resolved ahead of the kernel so their
// cache lines are in flight while the previous rows are still being
// consumed. Id validity is a caller contract: there is no total row
// count here to bound-check against, and an id pointing outside y
// makes the scan panic rather than read foreign memory.
func SquaredL2ByIDs(dis, x, y []float32, ids []int64, ny, d int) error {
	if err := validateScanByIDs(dis, x, y, ids, ny, d); err != nil {
		return logReject("SquaredL2ByIDs", err)
	}
	simd.SquaredL2ByIDs(dis, x, y, ids, ny, d)
	return nil
}

// InnerProductByIDs is the inner-product form of SquaredL2ByIDs.
func InnerProductByIDs(dis, x, y []float32, ids []int64, ny, d int) error {
	if err := validateScanByIDs(dis, x, y, ids, ny, d); err != nil {
		return logReject("InnerProductByIDs", err)
	}
	simd.InnerProductByIDs(dis, x, y, ids, ny, d)
	return nil
}

func validateScanByIDs(dis, x, y []float32, ids []int64, ny, d int) error {
	if err := checkDim(d); err != nil {
		return err
	}
	if err := checkCount(ny); err != nil {
		return err
	}
	if err := checkBuffer("x", x, d); err != nil {
		return err
	}
	if err := checkBuffer("y", y, d); err != nil {
		return err
	}
	if err := checkIDs(ids, ny); err != nil {
		return err
	}
	return checkBuffer("dis", dis, ny)
}
