package convolve

// Option configures an Engine during creation.
//
// Example:
//
//	// One worker per CPU, automatic band height
//	e := convolve.NewEngine()
//
//	// Fixed pool and 32-row bands
//	e := convolve.NewEngine(convolve.WithWorkers(4), convolve.WithBandHeight(32))
type Option func(*engineOptions)

type engineOptions struct {
	workers    int
	bandHeight int
}

func defaultEngineOptions() engineOptions {
	return engineOptions{
		workers:    0, // GOMAXPROCS
		bandHeight: 0, // derived from height and workers
	}
}

// WithWorkers sets the number of worker goroutines.
// Zero or a negative value means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithBandHeight sets how many rows each parallel job convolves.
// Zero or a negative value picks a height from the raster and worker count.
func WithBandHeight(rows int) Option {
	return func(o *engineOptions) {
		o.bandHeight = rows
	}
}

// CompareOption configures Compare.
type CompareOption func(*compareOptions)

type compareOptions struct {
	engine *Engine
	labels bool
}

// WithEngine runs both passes on a parallel Engine instead of the serial
// Convolve.
func WithEngine(e *Engine) CompareOption {
	return func(o *compareOptions) {
		o.engine = e
	}
}

// WithLabels draws a caption in the top-left corner of each panel.
func WithLabels(on bool) CompareOption {
	return func(o *compareOptions) {
		o.labels = on
	}
}
