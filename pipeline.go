package postfx

import (
	"github.com/gogpu/postfx/blend"
	"github.com/gogpu/postfx/colorspace"
	"github.com/gogpu/postfx/internal/parallel"
	"github.com/gogpu/postfx/tonemap"
)

// Pipeline applies the post-process transform to single samples or whole
// frames. The per-pixel transform itself is a pure function of the sample
// and the Config; the Pipeline only adds the worker pool used for frame
// processing.
//
// Thread safety: a Pipeline may process several frames concurrently as long
// as each call gets its own Config value (or the same unmutated one).
type Pipeline struct {
	pool *parallel.Pool
}

// NewPipeline creates a pipeline. With no options the worker count defaults
// to GOMAXPROCS.
func NewPipeline(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pipeline{pool: parallel.NewPool(o.workers)}
	Logger().Debug("postfx: pipeline created", "workers", p.pool.Workers())
	return p
}

// Close releases the worker pool. The pipeline must not be used afterwards.
func (p *Pipeline) Close() {
	p.pool.Close()
}

// Process transforms one sample. This is the whole per-pixel pipeline:
//
//	input -> working space -> layer fold -> linear -> tonemap -> gamma
//
// Alpha passes through from the input untouched. The function never fails:
// malformed configuration degrades to stable (if visually wrong) output and
// non-finite intermediates are contained by the tonemap and gamma clamps.
func Process(in Color, cfg *Config) Color {
	acc := colorspace.ToSpace(cfg.Space, in.Vec())

	// Left fold over the fixed stack. Zero-opacity layers still go through
	// the weighted blend; they are no-ops by construction of the lerp.
	for i := range cfg.Layers {
		layer := colorspace.ToSpace(cfg.Space, cfg.Layers[i].Color.Vec())
		acc = blend.BlendWeighted(cfg.Mode, acc, layer, cfg.Layers[i].Opacity())
	}

	rgb := colorspace.FromSpace(cfg.Space, acc)
	rgb = tonemap.Map(rgb, cfg.ToneMap.Brightness, cfg.tonemapConfig())
	rgb = tonemap.Gamma(rgb, cfg.ToneMap.InvGamma)

	return in.WithVec(rgb)
}

// ProcessColor transforms one sample using the pipeline's configuration
// handling. It is equivalent to the package-level Process; the method form
// exists so callers holding a Pipeline need only one entry point.
func (p *Pipeline) ProcessColor(in Color, cfg *Config) Color {
	return Process(in, cfg)
}

// ProcessPixmap transforms a whole frame in place, splitting it into
// per-row tasks across the worker pool. cfg must not be mutated while the
// call is in flight.
func (p *Pipeline) ProcessPixmap(pm *Pixmap, cfg *Config) {
	h := pm.Height()
	if h == 0 || pm.Width() == 0 {
		return
	}

	tasks := make([]func(), h)
	for y := 0; y < h; y++ {
		row := y
		tasks[row] = func() {
			pm.processRow(row, cfg)
		}
	}
	p.pool.Run(tasks)
}

// processRow applies the transform to every pixel of one row.
func (pm *Pixmap) processRow(y int, cfg *Config) {
	w := pm.width
	base := y * w * 4
	for x := 0; x < w; x++ {
		i := base + x*4
		in := Color{
			R: pm.data[i+0],
			G: pm.data[i+1],
			B: pm.data[i+2],
			A: pm.data[i+3],
		}
		out := Process(in, cfg)
		pm.data[i+0] = out.R
		pm.data[i+1] = out.G
		pm.data[i+2] = out.B
		pm.data[i+3] = out.A
	}
}
