package vecdist

import "fmt"

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	// MetricInnerProduct scores similarity as Σ xᵢyᵢ (higher is closer).
	MetricInnerProduct Metric = iota
	// MetricL2 scores distance as Σ (xᵢ-yᵢ)² (lower is closer).
	MetricL2
)

func (m Metric) String() string {
	switch m {
	case MetricInnerProduct:
		return "InnerProduct"
	case MetricL2:
		return "L2"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// PairwiseFunc is the signature of the one-to-one distance entry points.
type PairwiseFunc func(x, y []float32, d int, dis []float32) error

// ScanFunc is the signature of the bulk contiguous scan entry points.
type ScanFunc func(dis, x, y []float32, ny, d int) error

// ScanByIDsFunc is the signature of the indexed scan entry points.
type ScanByIDsFunc func(dis, x, y []float32, ids []int64, ny, d int) error

// Pairwise returns the pairwise function for the given metric.
func Pairwise(m Metric) (PairwiseFunc, error) {
	switch m {
	case MetricL2:
		return SquaredL2, nil
	case MetricInnerProduct:
		return InnerProduct, nil
	default:
		return nil, fmt.Errorf("%w: unsupported metric %v", ErrInvalidParam, m)
	}
}

// Scanner returns the bulk scan function for the given metric.
func Scanner(m Metric) (ScanFunc, error) {
	switch m {
	case MetricL2:
		return SquaredL2NY, nil
	case MetricInnerProduct:
		return InnerProductNY, nil
	default:
		return nil, fmt.Errorf("%w: unsupported metric %v", ErrInvalidParam, m)
	}
}

// ScannerByIDs returns the indexed scan function for the given metric.
func ScannerByIDs(m Metric) (ScanByIDsFunc, error) {
	switch m {
	case MetricL2:
		return SquaredL2ByIDs, nil
	case MetricInnerProduct:
		return InnerProductByIDs, nil
	default:
		return nil, fmt.Errorf("%w: unsupported metric %v", ErrInvalidParam, m)
	}
}
