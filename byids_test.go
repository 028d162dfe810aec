package vecdist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/vecdist/idlist"
)

func TestScanByIDsMatchesContiguous(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	const d, rows = 40, 30

	x := randomVec(rng, d)
	y := randomVec(rng, rows*d)

	// identity selection must reproduce the contiguous scan exactly
	ids := idlist.Sequential(rows)
	got := make([]float32, rows)
	require.NoError(t, SquaredL2ByIDs(got, x, y, ids, rows, d))

	want := make([]float32, rows)
	require.NoError(t, SquaredL2NY(want, x, y, rows, d))
	assert.Equal(t, want, got)
}

func TestScanByIDsSubsetAndRepeats(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	const d, rows = 16, 20

	x := randomVec(rng, d)
	y := randomVec(rng, rows*d)

	ids := []int64{19, 0, 7, 7, 3, 12, 0}
	got := make([]float32, len(ids))
	require.NoError(t, InnerProductByIDs(got, x, y, ids, len(ids), d))

	for i, id := range ids {
		want := refInnerProduct(x, y[id*int64(d):(id+1)*int64(d)])
		assert.InDelta(t, want, got[i], 1e-3, "pos %d id %d", i, id)
	}
}

func TestScanByIDsValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(10))
	const d = 8

	x := randomVec(rng, d)
	y := randomVec(rng, 4*d)
	ids := []int64{0, 1, 2, 3}
	dis := make([]float32, 4)

	assert.ErrorIs(t, SquaredL2ByIDs(dis, x, y, ids, 0, d), ErrInvalidParam)
	assert.ErrorIs(t, SquaredL2ByIDs(dis, x, y, ids, 4, 0), ErrInvalidParam)
	assert.ErrorIs(t, SquaredL2ByIDs(dis, nil, y, ids, 4, d), ErrInvalidBuffer)
	assert.ErrorIs(t, SquaredL2ByIDs(dis, x, y, nil, 4, d), ErrInvalidBuffer)
	assert.ErrorIs(t, SquaredL2ByIDs(dis, x, y, ids[:2], 4, d), ErrInvalidBuffer)
	assert.ErrorIs(t, SquaredL2ByIDs(dis[:3], x, y, ids, 4, d), ErrInvalidBuffer)
	assert.ErrorIs(t, InnerProductByIDs(dis, x, nil, ids, 4, d), ErrInvalidBuffer)
}
