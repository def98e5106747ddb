// Package convolve sharpens or blurs RGB rasters with fixed integer kernels
// and builds side-by-side comparison images.
//
// # Quick Start
//
//	import "github.com/gogpu/convolve"
//
//	src, err := convolve.Load("photo.jpg")
//	if err != nil {
//		return err
//	}
//
//	// Single pass
//	out, err := convolve.Convolve(src, 2, convolve.Blur)
//
//	// [original | radius 1 | radius 2]
//	cmp, err := convolve.Compare(ctx, src, convolve.Sharpen)
//	err = cmp.Save("images/comparison.png")
//
// # Kernels
//
// Four kernels are built in; see KernelFor and Kernels:
//
//	sharpen-3  divisor 1     sharpen-5  divisor 1
//	blur-3     divisor 16    blur-5     divisor 256
//
// Sharpen adds the weighted neighborhood sum to the source pixel. Blur
// divides the sum by the divisor. Results are clamped to [0, 255].
//
// # Borders
//
// Pixels within radius of an edge are copied from the source unchanged. No
// padding, replication or wraparound is applied.
//
// # Parallelism
//
// Convolve is single-threaded. Engine runs the same computation on a worker
// pool, one band of rows per job, and produces identical output. Compare
// runs its two passes concurrently.
//
// # Logging
//
// Nothing is logged by default. Use SetLogger to attach a log/slog logger.
package convolve
