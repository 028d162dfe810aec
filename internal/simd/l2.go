package simd

// squaredL2Unrolled computes one squared L2 distance with eight
// independent accumulator chains. The chains reassociate floating-point
// addition, so the result is not bit-identical to a left-to-right sum.
func squaredL2Unrolled(x, y []float32, d int) float32 {
	x = x[:d]
	y = y[:d]

	var a0, a1, a2, a3, a4, a5, a6, a7 float32
	i := 0
	for ; i+8 <= d; i += 8 {
		t0 := x[i] - y[i]
		t1 := x[i+1] - y[i+1]
		t2 := x[i+2] - y[i+2]
		t3 := x[i+3] - y[i+3]
		t4 := x[i+4] - y[i+4]
		t5 := x[i+5] - y[i+5]
		t6 := x[i+6] - y[i+6]
		t7 := x[i+7] - y[i+7]
		a0 += t0 * t0
		a1 += t1 * t1
		a2 += t2 * t2
		a3 += t3 * t3
		a4 += t4 * t4
		a5 += t5 * t5
		a6 += t6 * t6
		a7 += t7 * t7
	}

	res := ((a0 + a1) + (a2 + a3)) + ((a4 + a5) + (a6 + a7))
	for ; i < d; i++ {
		t := x[i] - y[i]
		res += t * t
	}
	return res
}

// squaredL2Batch2 computes two distances while loading each query
// element once.
func squaredL2Batch2(x []float32, y0, y1 []float32, d int, dis []float32) {
	x = x[:d]
	y0 = y0[:d]
	y1 = y1[:d]

	var r0, r1 float32
	for i, q := range x {
		t0 := y0[i] - q
		t1 := y1[i] - q
		r0 += t0 * t0
		r1 += t1 * t1
	}
	dis[0] = r0
	dis[1] = r1
}

func squaredL2Batch4(x []float32, rows *[4][]float32, d int, dis []float32) {
	x = x[:d]
	y0 := rows[0][:d]
	y1 := rows[1][:d]
	y2 := rows[2][:d]
	y3 := rows[3][:d]

	var r0, r1, r2, r3 float32
	for i, q := range x {
		t0 := y0[i] - q
		t1 := y1[i] - q
		t2 := y2[i] - q
		t3 := y3[i] - q
		r0 += t0 * t0
		r1 += t1 * t1
		r2 += t2 * t2
		r3 += t3 * t3
	}
	dis[0] = r0
	dis[1] = r1
	dis[2] = r2
	dis[3] = r3
}

func squaredL2Batch8(x []float32, rows *[8][]float32, d int, dis []float32) {
	x = x[:d]
	for j := range rows {
		rows[j] = rows[j][:d]
	}

	var acc [8]float32
	for i, q := range x {
		for j := range acc {
			t := rows[j][i] - q
			acc[j] += t * t
		}
	}
	copy(dis[:8], acc[:])
}

func squaredL2Batch16(x []float32, rows *[16][]float32, d int, dis []float32) {
	x = x[:d]
	for j := range rows {
		rows[j] = rows[j][:d]
	}

	var acc [16]float32
	for i, q := range x {
		for j := range acc {
			t := rows[j][i] - q
			acc[j] += t * t
		}
	}
	copy(dis[:16], acc[:])
}

// squaredL2Batch24 is the widest L2 batch kernel: 24 concurrently live
// accumulators is the practical register budget before spills eat the
// amortization win.
func squaredL2Batch24(x []float32, rows *[24][]float32, d int, dis []float32) {
	x = x[:d]
	for j := range rows {
		rows[j] = rows[j][:d]
	}

	var acc [24]float32
	for i, q := range x {
		for j := range acc {
			t := rows[j][i] - q
			acc[j] += t * t
		}
	}
	copy(dis[:24], acc[:])
}

// squaredL2NYBatched covers ny with the 24/16/8/4/2/1 ladder. The
// greedy largest-first decomposition leaves at most one pairwise call.
func squaredL2NYBatched(dis, x, y []float32, ny, d int) {
	var rows24 [24][]float32
	i := 0
	for ; i+24 <= ny; i += 24 {
		gatherContiguous(rows24[:], y, i, d)
		squaredL2Batch24(x, &rows24, d, dis[i:])
	}
	if ny-i >= 16 {
		var rows [16][]float32
		gatherContiguous(rows[:], y, i, d)
		squaredL2Batch16(x, &rows, d, dis[i:])
		i += 16
	} else if ny-i >= 8 {
		var rows [8][]float32
		gatherContiguous(rows[:], y, i, d)
		squaredL2Batch8(x, &rows, d, dis[i:])
		i += 8
	}
	if ny-i >= 4 {
		var rows [4][]float32
		gatherContiguous(rows[:], y, i, d)
		squaredL2Batch4(x, &rows, d, dis[i:])
		i += 4
	}
	if ny-i >= 2 {
		squaredL2Batch2(x, y[i*d:], y[(i+1)*d:], d, dis[i:])
		i += 2
	}
	if ny-i == 1 {
		dis[i] = kernelSquaredL2(x, y[i*d:], d)
	}
}

// squaredL2ByIDsBatched is the scatter-gather ladder: each group's rows
// are resolved up front so the row memory is already in flight when the
// batch kernel starts streaming it.
func squaredL2ByIDsBatched(dis, x, y []float32, ids []int64, ny, d int) {
	var rows24 [24][]float32
	i := 0
	for ; i+24 <= ny; i += 24 {
		gatherByIDs(rows24[:], y, ids[i:], d)
		squaredL2Batch24(x, &rows24, d, dis[i:])
	}
	if ny-i >= 16 {
		var rows [16][]float32
		gatherByIDs(rows[:], y, ids[i:], d)
		squaredL2Batch16(x, &rows, d, dis[i:])
		i += 16
	} else if ny-i >= 8 {
		var rows [8][]float32
		gatherByIDs(rows[:], y, ids[i:], d)
		squaredL2Batch8(x, &rows, d, dis[i:])
		i += 8
	}
	if ny-i >= 4 {
		var rows [4][]float32
		gatherByIDs(rows[:], y, ids[i:], d)
		squaredL2Batch4(x, &rows, d, dis[i:])
		i += 4
	}
	if ny-i >= 2 {
		off0 := int(ids[i]) * d
		off1 := int(ids[i+1]) * d
		squaredL2Batch2(x, y[off0:], y[off1:], d, dis[i:])
		i += 2
	}
	if ny-i == 1 {
		dis[i] = kernelSquaredL2(x, y[int(ids[i])*d:], d)
	}
}

// gatherContiguous resolves row windows y[(base+j)*d : ...+d] into rows.
func gatherContiguous(rows [][]float32, y []float32, base, d int) {
	for j := range rows {
		off := (base + j) * d
		rows[j] = y[off : off+d : off+d]
	}
}

// gatherByIDs resolves the next len(rows) ids into row windows.
// Touching rows[j][0] here starts the cache-line fetch one kernel early.
func gatherByIDs(rows [][]float32, y []float32, ids []int64, d int) {
	for j := range rows {
		off := int(ids[j]) * d
		rows[j] = y[off : off+d : off+d]
		_ = rows[j][0]
	}
}
