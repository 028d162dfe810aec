package vecdist

import "github.com/hupe1980/vecdist/internal/simd"

// SquaredL2NY computes squared L2 distances between x[:d] and the ny
// contiguous database vectors y[i*d:(i+1)*d], writing dis[0:ny].
//
// The count is covered greedily by fixed-size batch kernels
// (24, then 16 or 8, then 4, 2, 1) so that each loaded query chunk is
// reused across as many database rows as the register budget allows.
func SquaredL2NY(dis, x, y []float32, ny, d int) error {
	if err := validateScan(dis, x, y, ny, d); err != nil {
		return logReject("SquaredL2NY", err)
	}
	simd.SquaredL2NY(dis, x, y, ny, d)
	return nil
}

// InnerProductNY computes inner products between x[:d] and the ny
// contiguous database vectors y[i*d:(i+1)*d], writing dis[0:ny].
// The batch ladder tops out at 16 rather than 24; see SquaredL2NY.
func InnerProductNY(dis, x, y []float32, ny, d int) error {
	if err := validateScan(dis, x, y, ny, d); err != nil {
		return logReject("InnerProductNY", err)
	}
	simd.InnerProductNY(dis, x, y, ny, d)
	return nil
}

func validateScan(dis, x, y []float32, ny, d int) error {
	if err := checkDim(d); err != nil {
		return err
	}
	if err := checkCount(ny); err != nil {
		return err
	}
	if err := checkBuffer("x", x, d); err != nil {
		return err
	}
	if err := checkBuffer("y", y, ny*d); err != nil {
		return err
	}
	return checkBuffer("dis", dis, ny)
}
