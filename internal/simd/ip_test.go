package simd

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInnerProduct(t *testing.T) {
	tests := []struct {
		name     string
		x, y     []float32
		expected float32
	}{
		{"Single component", []float32{3}, []float32{4}, 12.0},
		{"Positive values (size 3)", []float32{1, 2, 3}, []float32{4, 5, 6}, 32.0},
		{"Negative values (size 3)", []float32{-1, -2, -3}, []float32{-4, -5, -6}, 32.0},
		{"Mixed values (size 3)", []float32{1, -2, 3}, []float32{-4, 5, -6}, -32.0},
		{"Zero values (size 3)", []float32{0, 0, 0}, []float32{0, 0, 0}, 0.0},
		{"Past unroll (size 10)", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 385.0},
		{"Two unrolls (size 16)", []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, 1496.0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InnerProduct(tc.x, tc.y, len(tc.x)))
		})
	}
}

func TestInnerProductRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for _, d := range []int{1, 2, 7, 8, 9, 16, 33, 64, 127, 512} {
		x := randomFloats(rng, d)
		y := randomFloats(rng, d)
		assert.InDelta(t, innerProductGeneric(x, y, d), InnerProduct(x, y, d), 1e-4, "d=%d", d)
	}
}

func TestInnerProductNY(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	dims := []int{1, 4, 13, 64, 128}
	counts := []int{1, 2, 3, 4, 7, 8, 9, 15, 16, 17, 31, 40, 100}

	for _, d := range dims {
		for _, ny := range counts {
			x := randomFloats(rng, d)
			y := randomFloats(rng, ny*d)

			got := make([]float32, ny)
			InnerProductNY(got, x, y, ny, d)

			want := make([]float32, ny)
			innerProductNYGeneric(want, x, y, ny, d)

			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-4, "d=%d ny=%d i=%d", d, ny, i)
			}
		}
	}
}

func TestInnerProductByIDs(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	const d, rows = 16, 50

	y := randomFloats(rng, rows*d)
	x := randomFloats(rng, d)

	for _, ny := range []int{1, 3, 8, 16, 33, 50} {
		ids := make([]int64, ny)
		for i := range ids {
			ids[i] = int64(rng.Intn(rows))
		}

		got := make([]float32, ny)
		InnerProductByIDs(got, x, y, ids, ny, d)

		for i, id := range ids {
			row := y[int(id)*d : int(id+1)*d]
			assert.InDelta(t, InnerProduct(x, row, d), got[i], 1e-4, "ny=%d i=%d", ny, i)
		}
	}
}
