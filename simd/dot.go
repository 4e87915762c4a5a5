// Package simd computes float32 dot products with a sequential scalar reference
// (DotBasic) and a lane-parallel reduction (DotSIMD). DotSIMD picks the widest
// kernel the CPU and build support: AVX-512, AVX2 or SSE4.1 on amd64 and NEON on
// arm64 when CGO is enabled, otherwise a portable 8-lane Go kernel.
//
// Lanes accumulate independently and are folded only at the end, so DotSIMD and
// DotBasic round differently and are not guaranteed to be bit-identical.
package simd

import (
	"errors"
	"fmt"
	"strings"
)

// ErrLengthMismatch is returned when the two inputs differ in length.
var ErrLengthMismatch = errors.New("simd: length mismatch")

// Kernel is one vectorized dot product implementation.
type Kernel struct {
	Name  string
	Lanes int
	fn    func(a, b []float32) float32
}

// Dot runs the kernel with the same precondition checks as DotSIMD.
func (k Kernel) Dot(a, b []float32) (float32, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	if len(a) == 0 {
		return 0, nil
	}
	return k.fn(a, b), nil
}

func (k Kernel) String() string {
	return fmt.Sprintf("%s(%d lanes)", k.Name, k.Lanes)
}

var (
	goKernel = Kernel{Name: "Go", Lanes: Lanes, fn: dotLanesGo}

	// kernels lists every usable kernel; dispatch files append in init().
	kernels = []Kernel{goKernel}
	active  = goKernel
)

// register adds k to the kernel list and makes it the DotSIMD kernel.
func register(k Kernel) {
	kernels = append(kernels, k)
	active = k
}

func checkLen(a, b []float32) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: len(a)=%d len(b)=%d", ErrLengthMismatch, len(a), len(b))
	}
	return nil
}

// DotBasic returns sum(a[i]*b[i]) accumulated left to right.
func DotBasic(a, b []float32) (float32, error) {
	if err := checkLen(a, b); err != nil {
		return 0, err
	}
	return dotScalar(a, b), nil
}

func dotScalar(a, b []float32) float32 {
	var sum float32
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// DotSIMD returns the dot product of a and b using the best available kernel.
// Lengths that are not a multiple of the lane width are valid: the tail is
// added with the scalar path after the lanes are reduced.
func DotSIMD(a, b []float32) (float32, error) {
	return active.Dot(a, b)
}

// Desc returns the name of the kernel used by DotSIMD (for logging).
func Desc() string {
	return active.Name
}

// LaneWidth returns the lane width of the kernel used by DotSIMD.
func LaneWidth() int {
	return active.Lanes
}

// Kernels returns the kernels usable on this CPU, portable Go kernel first and
// the DotSIMD kernel last.
func Kernels() []Kernel {
	out := make([]Kernel, len(kernels))
	copy(out, kernels)
	return out
}

// Lookup finds a kernel by name, ignoring case.
func Lookup(name string) (Kernel, bool) {
	for _, k := range kernels {
		if strings.EqualFold(k.Name, name) {
			return k, true
		}
	}
	return Kernel{}, false
}
