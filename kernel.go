package convolve

import (
	"errors"
	"fmt"
	"strings"
)

// Radius bounds supported by the kernel catalog.
const (
	MinRadius = 1
	MaxRadius = 2

	maxKernelSize = 2*MaxRadius + 1
)

// ErrInvalidRadius is returned for a radius other than 1 or 2.
var ErrInvalidRadius = errors.New("convolve: invalid radius")

// Kernel is a square integer convolution kernel centered on the target pixel.
//
// The side length is always 2*radius+1. Kernel values are immutable; the
// catalog hands them out by value.
type Kernel struct {
	name    string
	radius  int
	divisor int32
	weights [maxKernelSize * maxKernelSize]int32
}

func newKernel(name string, divisor int32, rows ...[]int32) Kernel {
	k := Kernel{name: name, radius: len(rows) / 2, divisor: divisor}
	size := len(rows)
	for i, row := range rows {
		copy(k.weights[i*size:], row)
	}
	return k
}

var (
	sharpen3 = newKernel("sharpen-3", 1,
		[]int32{0, -1, 0},
		[]int32{-1, 4, -1},
		[]int32{0, -1, 0},
	)

	sharpen5 = newKernel("sharpen-5", 1,
		[]int32{0, 0, -1, 0, 0},
		[]int32{0, -1, -2, -1, 0},
		[]int32{-1, -2, 16, -2, -1},
		[]int32{0, -1, -2, -1, 0},
		[]int32{0, 0, -1, 0, 0},
	)

	blur3 = newKernel("blur-3", 16,
		[]int32{1, 2, 1},
		[]int32{2, 4, 2},
		[]int32{1, 2, 1},
	)

	blur5 = newKernel("blur-5", 256,
		[]int32{1, 4, 6, 4, 1},
		[]int32{4, 16, 24, 16, 4},
		[]int32{6, 24, 36, 24, 6},
		[]int32{4, 16, 24, 16, 4},
		[]int32{1, 4, 6, 4, 1},
	)
)

// KernelFor returns the catalog kernel for a mode and radius.
func KernelFor(mode Mode, radius int) (Kernel, error) {
	if !mode.IsValid() {
		return Kernel{}, fmt.Errorf("%w: %d", ErrInvalidMode, uint8(mode))
	}
	switch radius {
	case 1:
		if mode == Sharpen {
			return sharpen3, nil
		}
		return blur3, nil
	case 2:
		if mode == Sharpen {
			return sharpen5, nil
		}
		return blur5, nil
	default:
		return Kernel{}, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
}

// Kernels returns the whole catalog: Sharpen-3, Sharpen-5, Blur-3, Blur-5.
func Kernels() []Kernel {
	return []Kernel{sharpen3, sharpen5, blur3, blur5}
}

// Name returns the catalog name, e.g. "blur-5".
func (k Kernel) Name() string { return k.name }

// Radius returns the distance from the center to the edge.
func (k Kernel) Radius() int { return k.radius }

// Size returns the side length, 2*radius+1.
func (k Kernel) Size() int { return 2*k.radius + 1 }

// Divisor returns the normalization divisor (1 for sharpen kernels).
func (k Kernel) Divisor() int32 { return k.divisor }

// Weight returns the weight applied to the pixel at offset (dx, dy) from the
// center, i.e. matrix position (dx+radius, dy+radius). Offsets outside
// [-radius, radius] weigh zero.
func (k Kernel) Weight(dx, dy int) int32 {
	r := k.radius
	if dx < -r || dx > r || dy < -r || dy > r {
		return 0
	}
	return k.weights[(dx+r)*k.Size()+(dy+r)]
}

// Sum returns the sum of all weights. Blur kernels sum to their divisor,
// sharpen kernels to zero.
func (k Kernel) Sum() int32 {
	var s int32
	for _, w := range k.weights {
		s += w
	}
	return s
}

// String renders the kernel as a matrix, one row per line.
func (k Kernel) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (divisor %d)\n", k.name, k.divisor)
	for i := range k.Size() {
		sb.WriteString("[")
		for j := range k.Size() {
			if j > 0 {
				sb.WriteString(" ")
			}
			fmt.Fprintf(&sb, "%3d", k.weights[i*k.Size()+j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
