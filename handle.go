package vecdist

// A Handle describes a segmented, block-transposed database snapshot:
// M segments of ny vectors each, padded to ceilNY vectors per segment
// and regrouped so that within each block of blockSize vectors, one
// dimension of every vector is contiguous. The snapshot layer owns the
// backing storage; this engine only reads through the handle for the
// duration of one Scan call.
type Handle struct {
	metric    Metric
	dataBits  int
	segments  int
	blockSize int
	dim       int
	ny        int
	ceilNY    int
	codes     []float32
}

// HandleConfig carries the shape of a snapshot as declared by its
// owning layer.
type HandleConfig struct {
	Metric    Metric
	BlockSize int // 16, 32 or 64
	Dim       int
	NY        int // vectors per segment
	Segments  int // M

	// DataBits is the element width of the stored vectors. Zero means
	// 32. Handles declaring 16 or 8 bits can be constructed - the
	// snapshot layer decides the width - but Scan fails closed on them
	// because no reduced-precision kernel exists in this engine.
	DataBits int

	// Codes is the block-transposed storage, laid out as
	// [Segments][CeilNY/BlockSize][BlockSize][Dim] with the dimension
	// index innermost-contiguous per block. Required for 32-bit
	// handles; ignored otherwise.
	Codes []float32
}

// NewHandle validates cfg and wraps it into a read-only Handle.
func NewHandle(cfg HandleConfig) (*Handle, error) {
	if cfg.BlockSize != 16 && cfg.BlockSize != 32 && cfg.BlockSize != 64 {
		return nil, logReject("NewHandle", &BlockSizeError{BlockSize: cfg.BlockSize})
	}
	if err := checkDim(cfg.Dim); err != nil {
		return nil, logReject("NewHandle", err)
	}
	if err := checkCount(cfg.NY); err != nil {
		return nil, logReject("NewHandle", err)
	}
	if cfg.Segments < 1 {
		return nil, logReject("NewHandle", &CountError{NY: cfg.Segments})
	}

	bits := cfg.DataBits
	if bits == 0 {
		bits = 32
	}
	if bits != 8 && bits != 16 && bits != 32 {
		return nil, logReject("NewHandle", &DataBitsError{Bits: bits})
	}

	ceilNY := ceilBlock(cfg.NY, cfg.BlockSize)
	if bits == 32 {
		need := cfg.Segments * ceilNY * cfg.Dim
		if err := checkBuffer("codes", cfg.Codes, need); err != nil {
			return nil, logReject("NewHandle", err)
		}
	}

	return &Handle{
		metric:    cfg.Metric,
		dataBits:  bits,
		segments:  cfg.Segments,
		blockSize: cfg.BlockSize,
		dim:       cfg.Dim,
		ny:        cfg.NY,
		ceilNY:    ceilNY,
		codes:     cfg.Codes,
	}, nil
}

// BuildHandle packs row-major vectors into the block-transposed layout
// and returns a handle over the freshly built storage. vectors holds
// segments*ny rows of dim floats each, segment-major. Padding lanes
// beyond ny are zero-filled.
//
// This is a convenience for tests and for snapshot layers that keep
// row-major storage; layers with their own transposed buffers should
// use NewHandle directly.
func BuildHandle(metric Metric, blockSize, dim, ny, segments int, vectors []float32) (*Handle, error) {
	if blockSize != 16 && blockSize != 32 && blockSize != 64 {
		return nil, logReject("BuildHandle", &BlockSizeError{BlockSize: blockSize})
	}
	if err := checkDim(dim); err != nil {
		return nil, logReject("BuildHandle", err)
	}
	if err := checkCount(ny); err != nil {
		return nil, logReject("BuildHandle", err)
	}
	if segments < 1 {
		return nil, logReject("BuildHandle", &CountError{NY: segments})
	}
	if err := checkBuffer("vectors", vectors, segments*ny*dim); err != nil {
		return nil, logReject("BuildHandle", err)
	}

	ceilNY := ceilBlock(ny, blockSize)
	codes := make([]float32, segments*ceilNY*dim)
	for m := 0; m < segments; m++ {
		src := vectors[m*ny*dim:]
		dst := codes[m*ceilNY*dim:]
		blockTranspose(dst, src, ny, dim, blockSize)
	}

	return NewHandle(HandleConfig{
		Metric:    metric,
		BlockSize: blockSize,
		Dim:       dim,
		NY:        ny,
		Segments:  segments,
		Codes:     codes,
	})
}

// Metric returns the metric the snapshot was built for.
func (h *Handle) Metric() Metric { return h.metric }

// Dim returns the vector dimension shared by all segments.
func (h *Handle) Dim() int { return h.dim }

// NY returns the vector count per segment.
func (h *Handle) NY() int { return h.ny }

// Segments returns the segment count M.
func (h *Handle) Segments() int { return h.segments }

// BlockSize returns the transposed tile width (16, 32 or 64).
func (h *Handle) BlockSize() int { return h.blockSize }

// CeilNY returns ny rounded up to a multiple of the block size: the
// padded per-segment stride of the transposed storage.
func (h *Handle) CeilNY() int { return h.ceilNY }

// DataBits returns the declared element width of the stored vectors.
func (h *Handle) DataBits() int { return h.dataBits }

func ceilBlock(ny, blockSize int) int {
	return (ny + blockSize - 1) / blockSize * blockSize
}

// blockTranspose regroups ny row-major vectors of dim floats into
// [ceilNY/bs][bs][dim] tiles with the dimension index contiguous per
// tile. Lanes past ny stay zero.
func blockTranspose(dst, src []float32, ny, dim, bs int) {
	nblocks := ceilBlock(ny, bs) / bs
	for b := 0; b < nblocks; b++ {
		tile := dst[b*bs*dim:]
		lanes := bs
		if left := ny - b*bs; left < lanes {
			lanes = left
		}
		for j := 0; j < lanes; j++ {
			row := src[(b*bs+j)*dim : (b*bs+j)*dim+dim]
			for i, v := range row {
				tile[i*bs+j] = v
			}
		}
	}
}
