package vecdist

import (
	"fmt"

	"github.com/hupe1980/vecdist/internal/safemem"
	"github.com/hupe1980/vecdist/internal/simd"
)

// Scan computes distances for every segment of the handle. x holds M
// concatenated queries of dim floats (segment m is scanned with
// x[m*dim:(m+1)*dim]); dis receives M*ny distances, segment-major.
//
// Full blocks are computed straight into dis. When ny is not a multiple
// of the block size, the last block of each segment is computed into a
// scratch buffer and only the valid prefix is moved through a
// capacity-checked copy, so the padding lanes never reach dis.
func (h *Handle) Scan(dis, x []float32) error {
	if h == nil {
		return logReject("Handle.Scan", &BufferError{Name: "handle", Need: 1, Got: -1})
	}
	if err := checkBuffer("dis", dis, h.segments*h.ny); err != nil {
		return logReject("Handle.Scan", err)
	}
	if err := checkBuffer("x", x, h.segments*h.dim); err != nil {
		return logReject("Handle.Scan", err)
	}
	if h.dataBits != 32 {
		return logReject("Handle.Scan", &DataBitsError{Bits: h.dataBits})
	}

	block := blockKernel(h.metric, h.blockSize)
	bs := h.blockSize
	dim := h.dim
	left := h.ny % bs

	var tmp [64]float32
	for m := 0; m < h.segments; m++ {
		q := x[m*dim:]
		out := dis[m*h.ny:]
		seg := h.codes[m*h.ceilNY*dim:]

		i := 0
		for ; i+bs <= h.ny; i += bs {
			block(out[i:], q, seg[i*dim:], dim)
		}
		if left > 0 {
			block(tmp[:bs], q, seg[i*dim:], dim)
			if err := safemem.CheckAndCopy(dis[m*h.ny+i:], tmp[:left]); err != nil {
				return logReject("Handle.Scan", fmt.Errorf("%w: %w", ErrUnsafeCopy, err))
			}
		}
	}
	return nil
}

func blockKernel(m Metric, bs int) func(dis, x, y []float32, d int) {
	if m == MetricL2 {
		switch bs {
		case 16:
			return simd.SquaredL2Block16
		case 32:
			return simd.SquaredL2Block32
		default:
			return simd.SquaredL2Block64
		}
	}
	switch bs {
	case 16:
		return simd.InnerProductBlock16
	case 32:
		return simd.InnerProductBlock32
	default:
		return simd.InnerProductBlock64
	}
}
