package simd

import (
	"os"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// KernelSet identifies which set of kernel implementations is active.
type KernelSet uint8

const (
	// Batched is the default set: unrolled, multi-accumulator kernels.
	Batched KernelSet = iota
	// Scalar is the naive reference set (left-to-right accumulation).
	Scalar
)

// String returns the string representation of a KernelSet.
func (k KernelSet) String() string {
	switch k {
	case Batched:
		return "batched"
	case Scalar:
		return "scalar"
	default:
		return "unknown"
	}
}

// ParseKernelSet parses a string into a KernelSet value.
func ParseKernelSet(s string) (KernelSet, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "batched":
		return Batched, true
	case "scalar":
		return Scalar, true
	default:
		return Batched, false
	}
}

// Package-level state - initialized once at package init.
// No mutex needed: Go guarantees init() runs before any other code.
var (
	activeSet   KernelSet
	hasOverride bool
)

func init() {
	if override := os.Getenv("VECDIST_KERNEL"); override != "" {
		if set, ok := ParseKernelSet(override); ok {
			hasOverride = true
			activeSet = set
			bindKernelSet(set)
			return
		}
	}
	activeSet = Batched
	bindKernelSet(Batched)
}

// ActiveKernelSet returns the kernel set selected at init.
func ActiveKernelSet() KernelSet { return activeSet }

// IsOverridden reports whether VECDIST_KERNEL forced the selection.
func IsOverridden() bool { return hasOverride }

// CPUFeatures returns a short diagnostic string describing the vector
// capabilities of the host CPU. Informational only: the kernels are
// portable Go and rely on the compiler for vectorization.
func CPUFeatures() string {
	var feats []string
	switch runtime.GOARCH {
	case "arm64":
		if cpu.ARM64.HasASIMD {
			feats = append(feats, "asimd")
		}
		if cpu.ARM64.HasSVE {
			feats = append(feats, "sve")
		}
	case "amd64":
		if cpu.X86.HasSSE42 {
			feats = append(feats, "sse4.2")
		}
		if cpu.X86.HasAVX2 {
			feats = append(feats, "avx2")
		}
		if cpu.X86.HasAVX512F {
			feats = append(feats, "avx512f")
		}
	}
	if len(feats) == 0 {
		return "none"
	}
	return strings.Join(feats, ",")
}
