package simd

// Blocked kernels walk the inverse access pattern of the batch kernels:
// one block of lanes stays live across the whole dimension sweep, and
// each query element is broadcast across every lane of the block. The
// layout is dimension-major within a block - y[i*bs+j] holds dimension
// i of lane j - so each broadcast touches one contiguous run.

func squaredL2Block16Unrolled(dis, x, y []float32, d int) {
	x = x[:d]
	y = y[: d*16 : d*16]

	var acc [16]float32
	for i, q := range x {
		lane := y[i*16 : i*16+16 : i*16+16]
		for j := range acc {
			t := lane[j] - q
			acc[j] += t * t
		}
	}
	copy(dis[:16], acc[:])
}

func squaredL2Block32Unrolled(dis, x, y []float32, d int) {
	x = x[:d]
	y = y[: d*32 : d*32]

	var acc [32]float32
	for i, q := range x {
		lane := y[i*32 : i*32+32 : i*32+32]
		for j := range acc {
			t := lane[j] - q
			acc[j] += t * t
		}
	}
	copy(dis[:32], acc[:])
}

func squaredL2Block64Unrolled(dis, x, y []float32, d int) {
	x = x[:d]
	y = y[: d*64 : d*64]

	var acc [64]float32
	for i, q := range x {
		lane := y[i*64 : i*64+64 : i*64+64]
		for j := range acc {
			t := lane[j] - q
			acc[j] += t * t
		}
	}
	copy(dis[:64], acc[:])
}

func innerProductBlock16Unrolled(dis, x, y []float32, d int) {
	x = x[:d]
	y = y[: d*16 : d*16]

	var acc [16]float32
	for i, q := range x {
		lane := y[i*16 : i*16+16 : i*16+16]
		for j := range acc {
			acc[j] += lane[j] * q
		}
	}
	copy(dis[:16], acc[:])
}

func innerProductBlock32Unrolled(dis, x, y []float32, d int) {
	x = x[:d]
	y = y[: d*32 : d*32]

	var acc [32]float32
	for i, q := range x {
		lane := y[i*32 : i*32+32 : i*32+32]
		for j := range acc {
			acc[j] += lane[j] * q
		}
	}
	copy(dis[:32], acc[:])
}

func innerProductBlock64Unrolled(dis, x, y []float32, d int) {
	x = x[:d]
	y = y[: d*64 : d*64]

	var acc [64]float32
	for i, q := range x {
		lane := y[i*64 : i*64+64 : i*64+64]
		for j := range acc {
			acc[j] += lane[j] * q
		}
	}
	copy(dis[:64], acc[:])
}
