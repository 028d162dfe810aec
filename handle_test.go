package vecdist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandleValidation(t *testing.T) {
	valid := HandleConfig{
		Metric:    MetricL2,
		BlockSize: 16,
		Dim:       4,
		NY:        10,
		Segments:  1,
		Codes:     make([]float32, 16*4),
	}

	tests := []struct {
		name     string
		mutate   func(*HandleConfig)
		sentinel error
	}{
		{"Unsupported block size", func(c *HandleConfig) { c.BlockSize = 8 }, ErrInvalidParam},
		{"Zero dimension", func(c *HandleConfig) { c.Dim = 0 }, ErrInvalidParam},
		{"Dimension above cap", func(c *HandleConfig) { c.Dim = 70000 }, ErrInvalidParam},
		{"Zero count", func(c *HandleConfig) { c.NY = 0 }, ErrInvalidParam},
		{"Zero segments", func(c *HandleConfig) { c.Segments = 0 }, ErrInvalidParam},
		{"Bad data bits", func(c *HandleConfig) { c.DataBits = 4 }, ErrInvalidParam},
		{"Nil codes", func(c *HandleConfig) { c.Codes = nil }, ErrInvalidBuffer},
		{"Short codes", func(c *HandleConfig) { c.Codes = c.Codes[:10] }, ErrInvalidBuffer},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			h, err := NewHandle(cfg)
			assert.Nil(t, h)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}

	h, err := NewHandle(valid)
	require.NoError(t, err)
	assert.Equal(t, 32, h.DataBits())
	assert.Equal(t, 16, h.CeilNY())
	assert.Equal(t, MetricL2, h.Metric())
	assert.Equal(t, 4, h.Dim())
	assert.Equal(t, 10, h.NY())
	assert.Equal(t, 1, h.Segments())
	assert.Equal(t, 16, h.BlockSize())
}

// Reduced-precision handles can be declared but never scanned here.
func TestHandleScanFailsClosedOnDataBits(t *testing.T) {
	for _, bits := range []int{8, 16} {
		h, err := NewHandle(HandleConfig{
			Metric:    MetricL2,
			BlockSize: 16,
			Dim:       4,
			NY:        16,
			Segments:  1,
			DataBits:  bits,
		})
		require.NoError(t, err, "bits=%d", bits)

		dis := make([]float32, 16)
		x := make([]float32, 4)
		err = h.Scan(dis, x)

		var dbErr *DataBitsError
		require.ErrorAs(t, err, &dbErr, "bits=%d", bits)
		assert.Equal(t, bits, dbErr.Bits)
		assert.ErrorIs(t, err, ErrInvalidParam)
	}
}

func TestHandleScanValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	h, err := BuildHandle(MetricL2, 16, 4, 10, 2, randomVec(rng, 2*10*4))
	require.NoError(t, err)

	dis := make([]float32, 20)
	x := make([]float32, 8)

	assert.ErrorIs(t, h.Scan(dis[:19], x), ErrInvalidBuffer)
	assert.ErrorIs(t, h.Scan(dis, x[:7]), ErrInvalidBuffer)
	assert.ErrorIs(t, h.Scan(nil, x), ErrInvalidBuffer)

	var nilHandle *Handle
	assert.Error(t, nilHandle.Scan(dis, x))
}

func TestBuildHandleValidation(t *testing.T) {
	vecs := make([]float32, 10*4)

	_, err := BuildHandle(MetricL2, 10, 4, 10, 1, vecs)
	assert.ErrorIs(t, err, ErrInvalidParam)

	var bsErr *BlockSizeError
	require.ErrorAs(t, err, &bsErr)
	assert.Equal(t, 10, bsErr.BlockSize)

	_, err = BuildHandle(MetricL2, 16, 4, 10, 1, vecs[:39])
	assert.ErrorIs(t, err, ErrInvalidBuffer)

	_, err = BuildHandle(MetricL2, 16, 4, 10, 0, vecs)
	assert.ErrorIs(t, err, ErrInvalidParam)
}

// Scanning a transposed snapshot must reproduce the row-major bulk
// scan, for every block size and for counts on, below, and above block
// boundaries.
func TestHandleScanMatchesBulkScan(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	const d = 24

	for _, bs := range []int{16, 32, 64} {
		for _, ny := range []int{1, bs - 1, bs, bs + 1, 2*bs + 5} {
			vecs := randomVec(rng, ny*d)
			x := randomVec(rng, d)

			for _, metric := range []Metric{MetricL2, MetricInnerProduct} {
				h, err := BuildHandle(metric, bs, d, ny, 1, vecs)
				require.NoError(t, err)

				got := make([]float32, ny)
				require.NoError(t, h.Scan(got, x))

				want := make([]float32, ny)
				scan, err := Scanner(metric)
				require.NoError(t, err)
				require.NoError(t, scan(want, x, vecs, ny, d))

				for i := range want {
					assert.InDelta(t, want[i], got[i], 1e-4,
						"metric=%s bs=%d ny=%d row=%d", metric, bs, ny, i)
				}
			}
		}
	}
}

// Each segment is scanned with its own query slice from x.
func TestHandleScanMultiSegment(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	const d, ny, segments = 12, 21, 3

	vecs := randomVec(rng, segments*ny*d)
	queries := randomVec(rng, segments*d)

	h, err := BuildHandle(MetricL2, 16, d, ny, segments, vecs)
	require.NoError(t, err)

	got := make([]float32, segments*ny)
	require.NoError(t, h.Scan(got, queries))

	for m := 0; m < segments; m++ {
		q := queries[m*d : (m+1)*d]
		seg := vecs[m*ny*d : (m+1)*ny*d]
		want := make([]float32, ny)
		require.NoError(t, SquaredL2NY(want, q, seg, ny, d))

		for i := range want {
			assert.InDelta(t, want[i], got[m*ny+i], 1e-4, "segment=%d row=%d", m, i)
		}
	}
}

// The tail block is computed into scratch; padding lanes must never
// leak past ny into the output.
func TestHandleScanTailDoesNotOverrun(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	const d = 8

	for _, bs := range []int{16, 32, 64} {
		ny := bs + 4 // forces a 4-lane tail block
		vecs := randomVec(rng, ny*d)
		x := randomVec(rng, d)

		h, err := BuildHandle(MetricInnerProduct, bs, d, ny, 1, vecs)
		require.NoError(t, err)

		dis := make([]float32, ny+8)
		for i := range dis {
			dis[i] = -777
		}
		require.NoError(t, h.Scan(dis[:ny], x))

		for i := ny; i < len(dis); i++ {
			assert.Equal(t, float32(-777), dis[i], "bs=%d overran at %d", bs, i)
		}
		for i := 0; i < ny; i++ {
			assert.NotEqual(t, float32(-777), dis[i], "bs=%d row %d not written", bs, i)
		}
	}
}

func TestMetricString(t *testing.T) {
	assert.Equal(t, "InnerProduct", MetricInnerProduct.String())
	assert.Equal(t, "L2", MetricL2.String())
	assert.Equal(t, "Unknown(9)", Metric(9).String())
}
