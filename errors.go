package vecdist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParam is returned when a dimension or count is outside
	// its documented bounds, or a handle declares an unsupported shape.
	ErrInvalidParam = errors.New("invalid parameter")

	// ErrInvalidBuffer is returned when a required slice is nil or its
	// length is smaller than what the call needs.
	ErrInvalidBuffer = errors.New("invalid or undersized buffer")

	// ErrUnsafeCopy is returned when a tail-block copy would overflow
	// the destination even though the top-level capacity check passed.
	ErrUnsafeCopy = errors.New("unsafe memory copy")
)

// DimensionError indicates a vector dimension outside [MinDim, MaxDim].
type DimensionError struct {
	Dim int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension %d outside [%d, %d]", e.Dim, MinDim, MaxDim)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidParam }

// CountError indicates a vector count outside [1, MaxNY].
type CountError struct {
	NY int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("count %d outside [1, %d]", e.NY, MaxNY)
}

func (e *CountError) Unwrap() error { return ErrInvalidParam }

// BufferError indicates a nil or undersized input or output slice.
// Got is -1 when the slice was nil.
type BufferError struct {
	Name string
	Need int
	Got  int
}

func (e *BufferError) Error() string {
	if e.Got < 0 {
		return fmt.Sprintf("%s: nil buffer, need length %d", e.Name, e.Need)
	}
	return fmt.Sprintf("%s: need length %d, got %d", e.Name, e.Need, e.Got)
}

func (e *BufferError) Unwrap() error { return ErrInvalidBuffer }

// BlockSizeError indicates a handle block size other than 16, 32 or 64.
type BlockSizeError struct {
	BlockSize int
}

func (e *BlockSizeError) Error() string {
	return fmt.Sprintf("block size %d not one of 16, 32, 64", e.BlockSize)
}

func (e *BlockSizeError) Unwrap() error { return ErrInvalidParam }

// DataBitsError indicates a handle element width this engine has no
// kernels for. Only 32-bit float vectors are supported; 16- and 8-bit
// handles fail closed.
type DataBitsError struct {
	Bits int
}

func (e *DataBitsError) Error() string {
	return fmt.Sprintf("unsupported element width: %d bits", e.Bits)
}

func (e *DataBitsError) Unwrap() error { return ErrInvalidParam }
