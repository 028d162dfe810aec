// Package idlist builds and checks the row-id lists consumed by the
// indexed (scatter-gather) scans.
//
// A typical producer is a metadata filter that compiles its candidate
// set into a roaring bitmap; FromBitmap flattens that set into the
// []int64 shape the scan engine takes. The scans themselves never
// validate ids - Check exists for callers that do know the total row
// count and want to fail before the scan rather than inside it.
package idlist

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// FromBitmap flattens a candidate bitmap into an ascending id list.
func FromBitmap(b *roaring.Bitmap) []int64 {
	if b == nil {
		return nil
	}
	ids := make([]int64, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		ids = append(ids, int64(it.Next()))
	}
	return ids
}

// AppendRange appends the ids [lo, hi) to dst and returns it.
func AppendRange(dst []int64, lo, hi int64) []int64 {
	for id := lo; id < hi; id++ {
		dst = append(dst, id)
	}
	return dst
}

// Sequential returns the identity id list [0, n).
func Sequential(n int) []int64 {
	return AppendRange(make([]int64, 0, n), 0, int64(n))
}

// Check verifies that every id addresses a row within a database of
// rows vectors. It reports the first offender.
func Check(ids []int64, rows int64) error {
	for i, id := range ids {
		if id < 0 || id >= rows {
			return fmt.Errorf("idlist: ids[%d] = %d outside [0, %d)", i, id, rows)
		}
	}
	return nil
}
