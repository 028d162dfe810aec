package vecdist

// Documented bounds for all entry points.
const (
	// MinDim and MaxDim bound the vector dimension.
	MinDim = 1
	MaxDim = 65535

	// MaxNY bounds the vector count of a single scan call.
	MaxNY = 1 << 30
)

func checkDim(d int) error {
	if d < MinDim || d > MaxDim {
		return &DimensionError{Dim: d}
	}
	return nil
}

func checkCount(ny int) error {
	if ny < 1 || ny > MaxNY {
		return &CountError{NY: ny}
	}
	return nil
}

func checkBuffer(name string, buf []float32, need int) error {
	if buf == nil {
		return &BufferError{Name: name, Need: need, Got: -1}
	}
	if len(buf) < need {
		return &BufferError{Name: name, Need: need, Got: len(buf)}
	}
	return nil
}

func checkIDs(ids []int64, need int) error {
	if ids == nil {
		return &BufferError{Name: "ids", Need: need, Got: -1}
	}
	if len(ids) < need {
		return &BufferError{Name: "ids", Need: need, Got: len(ids)}
	}
	return nil
}
