package idlist

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBitmap(t *testing.T) {
	b := roaring.New()
	b.AddMany([]uint32{5, 1, 99, 42, 1})

	ids := FromBitmap(b)
	assert.Equal(t, []int64{1, 5, 42, 99}, ids)
}

func TestFromBitmapEmpty(t *testing.T) {
	assert.Empty(t, FromBitmap(roaring.New()))
	assert.Nil(t, FromBitmap(nil))
}

func TestFromBitmapRange(t *testing.T) {
	b := roaring.New()
	b.AddRange(10, 15)

	assert.Equal(t, []int64{10, 11, 12, 13, 14}, FromBitmap(b))
}

func TestAppendRange(t *testing.T) {
	ids := AppendRange(nil, 3, 6)
	assert.Equal(t, []int64{3, 4, 5}, ids)

	ids = AppendRange(ids, 10, 12)
	assert.Equal(t, []int64{3, 4, 5, 10, 11}, ids)

	assert.Empty(t, AppendRange(nil, 5, 5))
}

func TestSequential(t *testing.T) {
	assert.Equal(t, []int64{0, 1, 2, 3}, Sequential(4))
	assert.Empty(t, Sequential(0))
}

func TestCheck(t *testing.T) {
	require.NoError(t, Check([]int64{0, 3, 9}, 10))
	require.NoError(t, Check(nil, 10))

	err := Check([]int64{0, 10}, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ids[1]")

	err = Check([]int64{-1}, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-1")
}
