package main

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// loadFvecs reads the standard .fvecs layout: each record is a little
// endian int32 dimension followed by that many float32 components. A
// .zst suffix selects transparent zstd decompression.
func loadFvecs(path string) ([]float32, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	var r io.Reader = bufio.NewReaderSize(f, 1<<20)
	if strings.HasSuffix(path, ".zst") {
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, 0, fmt.Errorf("zstd: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	var vecs []float32
	dim := 0
	var hdr [4]byte
	for {
		if _, err := io.ReadFull(r, hdr[:]); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, 0, err
		}
		d := int(int32(binary.LittleEndian.Uint32(hdr[:])))
		if d <= 0 {
			return nil, 0, fmt.Errorf("bad record dimension %d", d)
		}
		if dim == 0 {
			dim = d
		} else if d != dim {
			return nil, 0, fmt.Errorf("mixed dimensions: %d and %d", dim, d)
		}

		buf := make([]byte, 4*d)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, 0, fmt.Errorf("truncated record: %w", err)
		}
		for i := 0; i < d; i++ {
			vecs = append(vecs, math.Float32frombits(binary.LittleEndian.Uint32(buf[4*i:])))
		}
	}
	if dim == 0 {
		return nil, 0, errors.New("empty dataset")
	}
	return vecs, dim, nil
}
