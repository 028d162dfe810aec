package simd

// Naive reference kernels. Left-to-right accumulation, no unrolling.
// These are the VECDIST_KERNEL=scalar set and the cross-check oracle
// for the batched kernels in tests.

func squaredL2Generic(x, y []float32, d int) float32 {
	var res float32
	for i := 0; i < d; i++ {
		t := x[i] - y[i]
		res += t * t
	}
	return res
}

func innerProductGeneric(x, y []float32, d int) float32 {
	var res float32
	for i := 0; i < d; i++ {
		res += x[i] * y[i]
	}
	return res
}

func squaredL2NYGeneric(dis, x, y []float32, ny, d int) {
	for i := 0; i < ny; i++ {
		dis[i] = squaredL2Generic(x, y[i*d:], d)
	}
}

func innerProductNYGeneric(dis, x, y []float32, ny, d int) {
	for i := 0; i < ny; i++ {
		dis[i] = innerProductGeneric(x, y[i*d:], d)
	}
}

func squaredL2ByIDsGeneric(dis, x, y []float32, ids []int64, ny, d int) {
	for i := 0; i < ny; i++ {
		dis[i] = squaredL2Generic(x, y[int(ids[i])*d:], d)
	}
}

func innerProductByIDsGeneric(dis, x, y []float32, ids []int64, ny, d int) {
	for i := 0; i < ny; i++ {
		dis[i] = innerProductGeneric(x, y[int(ids[i])*d:], d)
	}
}

func squaredL2BlockGeneric(dis, x, y []float32, d, bs int) {
	for j := 0; j < bs; j++ {
		var res float32
		for i := 0; i < d; i++ {
			t := y[i*bs+j] - x[i]
			res += t * t
		}
		dis[j] = res
	}
}

func innerProductBlockGeneric(dis, x, y []float32, d, bs int) {
	for j := 0; j < bs; j++ {
		var res float32
		for i := 0; i < d; i++ {
			res += y[i*bs+j] * x[i]
		}
		dis[j] = res
	}
}
