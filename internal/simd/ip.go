package simd

// innerProductUnrolled computes one inner product with eight independent
// accumulator chains. Reassociated; see squaredL2Unrolled.
func innerProductUnrolled(x, y []float32, d int) float32 {
	x = x[:d]
	y = y[:d]

	var a0, a1, a2, a3, a4, a5, a6, a7 float32
	i := 0
	for ; i+8 <= d; i += 8 {
		a0 += x[i] * y[i]
		a1 += x[i+1] * y[i+1]
		a2 += x[i+2] * y[i+2]
		a3 += x[i+3] * y[i+3]
		a4 += x[i+4] * y[i+4]
		a5 += x[i+5] * y[i+5]
		a6 += x[i+6] * y[i+6]
		a7 += x[i+7] * y[i+7]
	}

	res := ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
	for ; i < d; i++ {
		res += x[i] * y[i]
	}
	return res
}

func innerProductBatch2(x []float32, y0, y1 []float32, d int, dis []float32) {
	x = x[:d]
	y0 = y0[:d]
	y1 = y1[:d]

	var r0, r1 float32
	for i, q := range x {
		r0 += y0[i] * q
		r1 += y1[i] * q
	}
	dis[0] = r0
	dis[1] = r1
}

func innerProductBatch4(x []float32, rows *[4][]float32, d int, dis []float32) {
	x = x[:d]
	y0 := rows[0][:d]
	y1 := rows[1][:d]
	y2 := rows[2][:d]
	y3 := rows[3][:d]

	var r0, r1, r2, r3 float32
	for i, q := range x {
		r0 += y0[i] * q
		r1 += y1[i] * q
		r2 += y2[i] * q
		r3 += y3[i] * q
	}
	dis[0] = r0
	dis[1] = r1
	dis[2] = r2
	dis[3] = r3
}

func innerProductBatch8(x []float32, rows *[8][]float32, d int, dis []float32) {
	x = x[:d]
	for j := range rows {
		rows[j] = rows[j][:d]
	}

	var acc [8]float32
	for i, q := range x {
		for j := range acc {
			acc[j] += rows[j][i] * q
		}
	}
	copy(dis[:8], acc[:])
}

// innerProductBatch16 is the widest IP batch kernel. Inner product
// needs no difference temporary per lane, but the accumulator budget
// still tops out at 16 before spills.
func innerProductBatch16(x []float32, rows *[16][]float32, d int, dis []float32) {
	x = x[:d]
	for j := range rows {
		rows[j] = rows[j][:d]
	}

	var acc [16]float32
	for i, q := range x {
		for j := range acc {
			acc[j] += rows[j][i] * q
		}
	}
	copy(dis[:16], acc[:])
}

// innerProductNYBatched covers ny with the 16/8/4/2/1 ladder.
func innerProductNYBatched(dis, x, y []float32, ny, d int) {
	var rows16 [16][]float32
	i := 0
	for ; i+16 <= ny; i += 16 {
		gatherContiguous(rows16[:], y, i, d)
		innerProductBatch16(x, &rows16, d, dis[i:])
	}
	if ny-i >= 8 {
		var rows [8][]float32
		gatherContiguous(rows[:], y, i, d)
		innerProductBatch8(x, &rows, d, dis[i:])
		i += 8
	}
	if ny-i >= 4 {
		var rows [4][]float32
		gatherContiguous(rows[:], y, i, d)
		innerProductBatch4(x, &rows, d, dis[i:])
		i += 4
	}
	if ny-i >= 2 {
		innerProductBatch2(x, y[i*d:], y[(i+1)*d:], d, dis[i:])
		i += 2
	}
	if ny-i == 1 {
		dis[i] = kernelInnerProduct(x, y[i*d:], d)
	}
}

func innerProductByIDsBatched(dis, x, y []float32, ids []int64, ny, d int) {
	var rows16 [16][]float32
	i := 0
	for ; i+16 <= ny; i += 16 {
		gatherByIDs(rows16[:], y, ids[i:], d)
		innerProductBatch16(x, &rows16, d, dis[i:])
	}
	if ny-i >= 8 {
		var rows [8][]float32
		gatherByIDs(rows[:], y, ids[i:], d)
		innerProductBatch8(x, &rows, d, dis[i:])
		i += 8
	}
	if ny-i >= 4 {
		var rows [4][]float32
		gatherByIDs(rows[:], y, ids[i:], d)
		innerProductBatch4(x, &rows, d, dis[i:])
		i += 4
	}
	if ny-i >= 2 {
		off0 := int(ids[i]) * d
		off1 := int(ids[i+1]) * d
		innerProductBatch2(x, y[off0:], y[off1:], d, dis[i:])
		i += 2
	}
	if ny-i == 1 {
		dis[i] = kernelInnerProduct(x, y[int(ids[i])*d:], d)
	}
}
