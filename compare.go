package convolve

import (
	"context"
	"fmt"
	"image"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/convolve/internal/label"
)

// Panels is the number of panels in a comparison image.
const Panels = 3

// Compare convolves src at radius 1 and radius 2 and lays the results out
// side by side: [original | radius 1 | radius 2]. The returned raster is
// Panels*W wide and H tall.
//
// The two passes run concurrently. ctx is checked before each pass starts; a
// pass that has started runs to completion.
func Compare(ctx context.Context, src *Raster, mode Mode, opts ...CompareOption) (*Raster, error) {
	var o compareOptions
	for _, opt := range opts {
		opt(&o)
	}

	convolveFn := Convolve
	if o.engine != nil {
		convolveFn = o.engine.Convolve
	}

	if _, err := prepare(src, MinRadius, mode); err != nil {
		return nil, err
	}

	start := time.Now()
	var passes [MaxRadius]*Raster

	g, gctx := errgroup.WithContext(ctx)
	for radius := MinRadius; radius <= MaxRadius; radius++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := convolveFn(src, radius, mode)
			if err != nil {
				return fmt.Errorf("convolve: radius %d: %w", radius, err)
			}
			passes[radius-1] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out, err := NewRaster(src.width*Panels, src.height)
	if err != nil {
		return nil, err
	}
	out.Paste(src, 0, 0)
	for i, p := range passes {
		out.Paste(p, (i+1)*src.width, 0)
	}

	if o.labels {
		if err := drawCaptions(out, src.width, mode); err != nil {
			return nil, err
		}
	}

	Logger().Info("convolve: comparison assembled",
		"mode", mode.String(),
		"width", out.width,
		"height", out.height,
		"elapsed", time.Since(start))

	return out, nil
}

// drawCaptions labels each panel of a comparison image. Panels too small for
// their caption are left bare.
func drawCaptions(out *Raster, panelWidth int, mode Mode) error {
	l, err := label.New(label.DefaultSize)
	if err != nil {
		return err
	}
	defer func() { _ = l.Close() }()

	panel := image.Pt(panelWidth, out.height)
	for i := range Panels {
		text := label.Caption(mode.String(), i)
		if !l.Fits(panel, text) {
			Logger().Warn("convolve: caption skipped, panel too small",
				"caption", text,
				"panel", panel.String())
			continue
		}
		l.Draw(out, image.Pt(i*panelWidth, 0), text)
	}
	return nil
}
