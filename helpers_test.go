package convolve

import (
	"math/rand/v2"
	"testing"
)

// Test helper functions shared across package tests.

// uniformRaster creates a raster filled with one color.
func uniformRaster(t testing.TB, w, h int, r, g, b uint8) *Raster {
	t.Helper()
	ras, err := NewRaster(w, h)
	if err != nil {
		t.Fatalf("NewRaster(%d, %d) failed: %v", w, h, err)
	}
	ras.Fill(r, g, b)
	return ras
}

// noiseRaster creates a raster of deterministic pseudo-random pixels.
func noiseRaster(t testing.TB, w, h int, seed uint64) *Raster {
	t.Helper()
	ras, err := NewRaster(w, h)
	if err != nil {
		t.Fatalf("NewRaster(%d, %d) failed: %v", w, h, err)
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for i := range ras.pix {
		ras.pix[i] = uint8(rng.IntN(256))
	}
	return ras
}

// mustConvolve runs Convolve and fails the test on error.
func mustConvolve(t testing.TB, src *Raster, radius int, mode Mode) *Raster {
	t.Helper()
	out, err := Convolve(src, radius, mode)
	if err != nil {
		t.Fatalf("Convolve(r=%d, %s) failed: %v", radius, mode, err)
	}
	return out
}

// isBorder reports whether (x, y) is left untouched for the given radius.
func isBorder(x, y, w, h, radius int) bool {
	return x < radius || x > w-1-radius || y < radius || y > h-1-radius
}

// rgb packs a pixel for compact comparisons.
type rgb [3]uint8

func pixelAt(r *Raster, x, y int) rgb {
	red, green, blue := r.RGBAt(x, y)
	return rgb{red, green, blue}
}
