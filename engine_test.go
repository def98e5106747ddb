package convolve

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEngine_MatchesConvolve(t *testing.T) {
	sizes := []struct{ w, h int }{
		{1, 1},
		{3, 3},
		{5, 4},
		{64, 1},
		{97, 53},
		{40, 130},
	}
	configs := []struct {
		workers, band int
	}{
		{1, 0},
		{3, 0},
		{4, 1},
		{2, 7},
		{8, 1000},
	}

	for _, s := range sizes {
		src := noiseRaster(t, s.w, s.h, uint64(s.w*1000+s.h))
		for _, c := range configs {
			t.Run(fmt.Sprintf("%dx%d_w%d_b%d", s.w, s.h, c.workers, c.band), func(t *testing.T) {
				e := NewEngine(WithWorkers(c.workers), WithBandHeight(c.band))
				defer e.Close()

				for _, p := range allPasses {
					want := mustConvolve(t, src, p.radius, p.mode)
					got, err := e.Convolve(src, p.radius, p.mode)
					if err != nil {
						t.Fatalf("Engine.Convolve(r=%d, %s) failed: %v", p.radius, p.mode, err)
					}
					if diff := cmp.Diff(want.Pix(), got.Pix()); diff != "" {
						t.Errorf("r=%d %s: engine differs from Convolve (-want +got):\n%s", p.radius, p.mode, diff)
					}
				}
			})
		}
	}
}

func TestEngine_Workers(t *testing.T) {
	e := NewEngine(WithWorkers(3))
	defer e.Close()

	if e.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", e.Workers())
	}
}

func TestEngine_Errors(t *testing.T) {
	e := NewEngine(WithWorkers(2))
	defer e.Close()

	if _, err := e.Convolve(nil, 1, Blur); !errors.Is(err, ErrNilRaster) {
		t.Errorf("Convolve(nil) error = %v, want ErrNilRaster", err)
	}
	src := uniformRaster(t, 4, 4, 0, 0, 0)
	if _, err := e.Convolve(src, 5, Blur); !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("Convolve(r=5) error = %v, want ErrInvalidRadius", err)
	}
}

func TestEngine_Closed(t *testing.T) {
	e := NewEngine(WithWorkers(2))
	e.Close()
	e.Close() // idempotent

	src := uniformRaster(t, 8, 8, 1, 2, 3)
	out, err := e.Convolve(src, 1, Blur)
	if !errors.Is(err, ErrEngineClosed) {
		t.Errorf("Convolve after Close error = %v, want ErrEngineClosed", err)
	}
	if out != nil {
		t.Error("Convolve after Close returned a raster")
	}
}

func TestEngine_ConcurrentCallers(t *testing.T) {
	e := NewEngine(WithWorkers(4))
	defer e.Close()

	src := noiseRaster(t, 50, 70, 11)
	want := make(map[int]*Raster)
	for i, p := range allPasses {
		want[i] = mustConvolve(t, src, p.radius, p.mode)
	}

	var wg sync.WaitGroup
	for round := range 4 {
		for i, p := range allPasses {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := e.Convolve(src, p.radius, p.mode)
				if err != nil {
					t.Errorf("round %d: Convolve failed: %v", round, err)
					return
				}
				if !got.Equal(want[i]) {
					t.Errorf("round %d r=%d %s: output differs", round, p.radius, p.mode)
				}
			}()
		}
	}
	wg.Wait()
}

func TestEngine_CloseWhileConvolving(t *testing.T) {
	src := noiseRaster(t, 40, 90, 5)
	want := mustConvolve(t, src, 2, Sharpen)

	for range 20 {
		e := NewEngine(WithWorkers(3), WithBandHeight(1))

		var wg sync.WaitGroup
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := e.Convolve(src, 2, Sharpen)
				switch {
				case errors.Is(err, ErrEngineClosed):
				case err != nil:
					t.Errorf("Convolve failed: %v", err)
				case !got.Equal(want):
					t.Error("Convolve racing Close returned a partial result")
				}
			}()
		}

		e.Close()
		wg.Wait()
	}
}

func BenchmarkEngine(b *testing.B) {
	src := noiseRaster(b, 1920, 1080, 1)
	e := NewEngine()
	defer e.Close()

	for _, p := range allPasses {
		b.Run(fmt.Sprintf("%s_r%d", p.mode, p.radius), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = e.Convolve(src, p.radius, p.mode)
			}
		})
	}
}
