package simd

// Kernel function pointers - bound once at init, zero runtime overhead.
// The batched implementations are the default; bindKernelSet swaps in
// the scalar reference set when VECDIST_KERNEL=scalar is set.
var (
	kernelSquaredL2    = squaredL2Unrolled
	kernelInnerProduct = innerProductUnrolled

	kernelSquaredL2NY    = squaredL2NYBatched
	kernelInnerProductNY = innerProductNYBatched

	kernelSquaredL2ByIDs    = squaredL2ByIDsBatched
	kernelInnerProductByIDs = innerProductByIDsBatched

	kernelSquaredL2Block16 = squaredL2Block16Unrolled
	kernelSquaredL2Block32 = squaredL2Block32Unrolled
	kernelSquaredL2Block64 = squaredL2Block64Unrolled

	kernelInnerProductBlock16 = innerProductBlock16Unrolled
	kernelInnerProductBlock32 = innerProductBlock32Unrolled
	kernelInnerProductBlock64 = innerProductBlock64Unrolled
)

func bindKernelSet(set KernelSet) {
	if set != Scalar {
		kernelSquaredL2 = squaredL2Unrolled
		kernelInnerProduct = innerProductUnrolled

		kernelSquaredL2NY = squaredL2NYBatched
		kernelInnerProductNY = innerProductNYBatched

		kernelSquaredL2ByIDs = squaredL2ByIDsBatched
		kernelInnerProductByIDs = innerProductByIDsBatched

		kernelSquaredL2Block16 = squaredL2Block16Unrolled
		kernelSquaredL2Block32 = squaredL2Block32Unrolled
		kernelSquaredL2Block64 = squaredL2Block64Unrolled

		kernelInnerProductBlock16 = innerProductBlock16Unrolled
		kernelInnerProductBlock32 = innerProductBlock32Unrolled
		kernelInnerProductBlock64 = innerProductBlock64Unrolled
		return
	}

	kernelSquaredL2 = squaredL2Generic
	kernelInnerProduct = innerProductGeneric

	kernelSquaredL2NY = squaredL2NYGeneric
	kernelInnerProductNY = innerProductNYGeneric

	kernelSquaredL2ByIDs = squaredL2ByIDsGeneric
	kernelInnerProductByIDs = innerProductByIDsGeneric

	kernelSquaredL2Block16 = func(dis, x, y []float32, d int) { squaredL2BlockGeneric(dis, x, y, d, 16) }
	kernelSquaredL2Block32 = func(dis, x, y []float32, d int) { squaredL2BlockGeneric(dis, x, y, d, 32) }
	kernelSquaredL2Block64 = func(dis, x, y []float32, d int) { squaredL2BlockGeneric(dis, x, y, d, 64) }

	kernelInnerProductBlock16 = func(dis, x, y []float32, d int) { innerProductBlockGeneric(dis, x, y, d, 16) }
	kernelInnerProductBlock32 = func(dis, x, y []float32, d int) { innerProductBlockGeneric(dis, x, y, d, 32) }
	kernelInnerProductBlock64 = func(dis, x, y []float32, d int) { innerProductBlockGeneric(dis, x, y, d, 64) }
}

// SquaredL2 computes the squared L2 distance between x[:d] and y[:d].
//
// SAFETY: Assumes d <= len(x) and d <= len(y). Callers MUST validate.
func SquaredL2(x, y []float32, d int) float32 {
	return kernelSquaredL2(x, y, d)
}

// InnerProduct computes the inner product of x[:d] and y[:d].
//
// SAFETY: Assumes d <= len(x) and d <= len(y). Callers MUST validate.
func InnerProduct(x, y []float32, d int) float32 {
	return kernelInnerProduct(x, y, d)
}

// SquaredL2NY computes squared L2 distances between x[:d] and ny
// contiguous database vectors y[i*d:(i+1)*d], writing dis[0:ny].
//
// SAFETY: Assumes len(dis) >= ny and len(y) >= ny*d.
func SquaredL2NY(dis, x, y []float32, ny, d int) {
	kernelSquaredL2NY(dis, x, y, ny, d)
}

// InnerProductNY computes inner products between x[:d] and ny
// contiguous database vectors y[i*d:(i+1)*d], writing dis[0:ny].
//
// SAFETY: Assumes len(dis) >= ny and len(y) >= ny*d.
func InnerProductNY(dis, x, y []float32, ny, d int) {
	kernelInnerProductNY(dis, x, y, ny, d)
}

// SquaredL2ByIDs computes squared L2 distances between x[:d] and the ny
// database rows y[ids[i]*d : ids[i]*d+d], writing dis[0:ny].
//
// SAFETY: Assumes len(dis) >= ny, len(ids) >= ny, and that every id
// addresses a valid row within y. Id validity is a caller contract.
func SquaredL2ByIDs(dis, x, y []float32, ids []int64, ny, d int) {
	kernelSquaredL2ByIDs(dis, x, y, ids, ny, d)
}

// InnerProductByIDs computes inner products between x[:d] and the ny
// database rows y[ids[i]*d : ids[i]*d+d], writing dis[0:ny].
//
// SAFETY: Assumes len(dis) >= ny, len(ids) >= ny, and that every id
// addresses a valid row within y. Id validity is a caller contract.
func InnerProductByIDs(dis, x, y []float32, ids []int64, ny, d int) {
	kernelInnerProductByIDs(dis, x, y, ids, ny, d)
}

// SquaredL2Block16 computes 16 squared L2 distances from one
// dimension-major block: y[i*16+j] holds dimension i of lane j.
// Writes dis[0:16].
func SquaredL2Block16(dis, x, y []float32, d int) { kernelSquaredL2Block16(dis, x, y, d) }

// SquaredL2Block32 is the 32-lane variant of SquaredL2Block16.
func SquaredL2Block32(dis, x, y []float32, d int) { kernelSquaredL2Block32(dis, x, y, d) }

// SquaredL2Block64 is the 64-lane variant of SquaredL2Block16.
func SquaredL2Block64(dis, x, y []float32, d int) { kernelSquaredL2Block64(dis, x, y, d) }

// InnerProductBlock16 computes 16 inner products from one
// dimension-major block: y[i*16+j] holds dimension i of lane j.
// Writes dis[0:16].
func InnerProductBlock16(dis, x, y []float32, d int) { kernelInnerProductBlock16(dis, x, y, d) }

// InnerProductBlock32 is the 32-lane variant of InnerProductBlock16.
func InnerProductBlock32(dis, x, y []float32, d int) { kernelInnerProductBlock32(dis, x, y, d) }

// InnerProductBlock64 is the 64-lane variant of InnerProductBlock16.
func InnerProductBlock64(dis, x, y []float32, d int) { kernelInnerProductBlock64(dis, x, y, d) }
