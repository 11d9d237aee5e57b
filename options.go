package postfx

// Option configures a Pipeline during creation.
//
// Example:
//
//	// Default: one worker per CPU
//	p := postfx.NewPipeline()
//
//	// Single-threaded, e.g. for deterministic profiling
//	p := postfx.NewPipeline(postfx.WithWorkers(1))
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	workers int
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		workers: 0, // 0 = GOMAXPROCS, resolved by the pool
	}
}

// WithWorkers sets the number of worker goroutines used for frame
// processing. Values <= 0 select GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *pipelineOptions) {
		o.workers = n
	}
}
