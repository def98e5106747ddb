package convolve

import (
	"errors"
	"fmt"
	"time"
)

// ErrNilRaster is returned when a nil raster is passed to the engine.
var ErrNilRaster = errors.New("convolve: nil raster")

// Convolve applies the catalog kernel for mode and radius to src and returns
// a new raster of the same size. src is not modified.
//
// Pixels closer than radius to any edge are copied unchanged; the kernel is
// only evaluated where the whole neighborhood lies inside the raster. A
// raster narrower or shorter than 2*radius+1 is therefore returned as an
// unmodified copy.
//
// For interior pixels each channel is computed independently:
//
//	Sharpen: src + Σ weight·neighbor
//	Blur:    Σ weight·neighbor / divisor  (truncated toward zero)
//
// and the result is clamped to [0, 255].
//
// The only errors are for malformed arguments: ErrNilRaster,
// ErrInvalidDimensions, ErrInvalidRadius and ErrInvalidMode.
func Convolve(src *Raster, radius int, mode Mode) (*Raster, error) {
	k, err := prepare(src, radius, mode)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	dst := newRasterLike(src)
	convolveRows(src, dst, &k, mode, 0, src.height)

	Logger().Debug("convolve: pass done",
		"kernel", k.name,
		"width", src.width,
		"height", src.height,
		"elapsed", time.Since(start))

	return dst, nil
}

// prepare validates the arguments and resolves the kernel.
func prepare(src *Raster, radius int, mode Mode) (Kernel, error) {
	if src == nil {
		return Kernel{}, ErrNilRaster
	}
	if src.width <= 0 || src.height <= 0 {
		return Kernel{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, src.width, src.height)
	}
	return KernelFor(mode, radius)
}

// convolveRows writes output rows [y0, y1) of dst from src.
//
// It reads any row of src but writes only its own rows of dst, so disjoint
// row ranges may run concurrently.
func convolveRows(src, dst *Raster, k *Kernel, mode Mode, y0, y1 int) {
	w, h := src.width, src.height
	r := k.radius
	size := k.Size()
	stride := src.Stride()

	for y := y0; y < y1; y++ {
		rowBorder := y < r || y > h-1-r

		for x := range w {
			off := y*stride + x*BytesPerPixel

			if rowBorder || x < r || x > w-1-r {
				copy(dst.pix[off:off+BytesPerPixel], src.pix[off:off+BytesPerPixel])
				continue
			}

			// int32 holds the worst case comfortably: 255 * 256 for blur-5.
			var sr, sg, sb int32
			for dy := -r; dy <= r; dy++ {
				row := (y + dy) * stride
				for dx := -r; dx <= r; dx++ {
					wgt := k.weights[(dx+r)*size+(dy+r)]
					if wgt == 0 {
						continue
					}
					p := row + (x+dx)*BytesPerPixel
					sr += wgt * int32(src.pix[p])
					sg += wgt * int32(src.pix[p+1])
					sb += wgt * int32(src.pix[p+2])
				}
			}

			switch mode {
			case Sharpen:
				sr += int32(src.pix[off])
				sg += int32(src.pix[off+1])
				sb += int32(src.pix[off+2])
			case Blur:
				sr /= k.divisor
				sg /= k.divisor
				sb /= k.divisor
			}

			dst.pix[off] = clampChannel(sr)
			dst.pix[off+1] = clampChannel(sg)
			dst.pix[off+2] = clampChannel(sb)
		}
	}
}

// clampChannel clamps v to [0, 255].
func clampChannel(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
