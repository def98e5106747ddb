// Package parallel provides row-band parallelism for raster filters.
//
// A raster is split into horizontal bands of whole rows. Every band writes a
// disjoint range of the output, so bands can run on any worker in any order
// without synchronization beyond waiting for completion.
//
// Thread safety: WorkerPool is safe for concurrent use. Band values are
// immutable.
package parallel

// DefaultBandHeight is the band height used when the caller does not pick one
// and the raster is tall enough to give every worker several bands.
// 64 rows matches the tile height the pool was tuned with.
const DefaultBandHeight = 64

// bandsPerWorker is how many bands each worker should get, at minimum, so
// that work stealing can even out uneven bands.
const bandsPerWorker = 4

// Band is a half-open range of rows [Y0, Y1).
type Band struct {
	Y0 int
	Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// Bands splits height rows into consecutive bands.
//
// If bandHeight is positive it is used as is (the last band may be shorter).
// Otherwise the height is chosen so that each of the given workers gets about
// bandsPerWorker bands, capped at DefaultBandHeight and never below one row.
//
// The result covers [0, height) exactly, in order. A non-positive height
// yields no bands.
func Bands(height, bandHeight, workers int) []Band {
	if height <= 0 {
		return nil
	}
	if bandHeight <= 0 {
		bandHeight = autoBandHeight(height, workers)
	}

	n := (height + bandHeight - 1) / bandHeight
	bands := make([]Band, 0, n)
	for y := 0; y < height; y += bandHeight {
		bands = append(bands, Band{Y0: y, Y1: min(y+bandHeight, height)})
	}
	return bands
}

func autoBandHeight(height, workers int) int {
	if workers <= 0 {
		workers = 1
	}
	target := workers * bandsPerWorker
	h := (height + target - 1) / target
	return max(1, min(h, DefaultBandHeight))
}
