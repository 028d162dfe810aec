package safemem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAndCopy(t *testing.T) {
	src := []float32{1, 2, 3}

	dst := make([]float32, 4)
	require.NoError(t, CheckAndCopy(dst, src))
	assert.Equal(t, []float32{1, 2, 3, 0}, dst)

	exact := make([]float32, 3)
	require.NoError(t, CheckAndCopy(exact, src))
	assert.Equal(t, src, exact)

	require.NoError(t, CheckAndCopy(dst, nil))
}

// A failed copy must leave the destination byte-for-byte intact.
func TestCheckAndCopyShortDst(t *testing.T) {
	dst := []float32{-1, -1}
	err := CheckAndCopy(dst, []float32{1, 2, 3})
	assert.ErrorIs(t, err, ErrShortDst)
	assert.Equal(t, []float32{-1, -1}, dst)
}

func TestCheckAndCopyOtherTypes(t *testing.T) {
	dst := make([]int64, 2)
	require.NoError(t, CheckAndCopy(dst, []int64{7, 8}))
	assert.Equal(t, []int64{7, 8}, dst)
}

func TestCheckAndFill(t *testing.T) {
	dst := []float32{-1, -1, -1, -1}
	require.NoError(t, CheckAndFill(dst, 5, 3))
	assert.Equal(t, []float32{5, 5, 5, -1}, dst)

	require.NoError(t, CheckAndFill(dst, 9, 0))
	assert.Equal(t, []float32{5, 5, 5, -1}, dst)
}

func TestCheckAndFillShortDst(t *testing.T) {
	dst := []float32{-1, -1}
	err := CheckAndFill(dst, 5, 3)
	assert.ErrorIs(t, err, ErrShortDst)
	assert.Equal(t, []float32{-1, -1}, dst)
}
