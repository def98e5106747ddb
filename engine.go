package convolve

import (
	"errors"
	"time"

	"github.com/gogpu/convolve/internal/parallel"
)

// ErrEngineClosed is returned by Engine.Convolve after Close.
var ErrEngineClosed = errors.New("convolve: engine closed")

// Engine convolves rasters on a pool of worker goroutines.
//
// The output is split into bands of whole rows. Each band reads the shared,
// read-only input and writes only its own rows of the output, so no locking
// is involved and the result is bit-identical to Convolve.
//
// Thread safety: an Engine may be used by several goroutines at once.
type Engine struct {
	pool       *parallel.WorkerPool
	bandHeight int
}

// NewEngine starts an engine. Call Close to stop its workers.
func NewEngine(opts ...Option) *Engine {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		pool:       parallel.NewWorkerPool(o.workers),
		bandHeight: o.bandHeight,
	}

	Logger().Debug("convolve: engine started",
		"workers", e.pool.Workers(),
		"band_height", e.bandHeight)

	return e
}

// Convolve is the parallel counterpart of the package-level Convolve.
func (e *Engine) Convolve(src *Raster, radius int, mode Mode) (*Raster, error) {
	k, err := prepare(src, radius, mode)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	dst := newRasterLike(src)
	bands := parallel.Bands(src.height, e.bandHeight, e.pool.Workers())

	ok := e.pool.ExecuteBands(bands, func(b parallel.Band) {
		convolveRows(src, dst, &k, mode, b.Y0, b.Y1)
	})
	if !ok {
		return nil, ErrEngineClosed
	}

	Logger().Debug("convolve: parallel pass done",
		"kernel", k.name,
		"width", src.width,
		"height", src.height,
		"bands", len(bands),
		"workers", e.pool.Workers(),
		"elapsed", time.Since(start))

	return dst, nil
}

// Workers returns the number of worker goroutines.
func (e *Engine) Workers() int {
	return e.pool.Workers()
}

// Close stops the workers after queued bands finish.
// Close is safe to call multiple times.
func (e *Engine) Close() {
	e.pool.Close()
}
