// Package postfx is a configurable per-pixel color post-processing
// pipeline for rendered frames.
//
// # Overview
//
// postfx reproduces a renderer's final-pass color transform on the CPU:
// each pixel is converted into a selectable working color space, a small
// ordered stack of color-shift layers is composited onto it with a
// selectable blend mode, the result is converted back to linear RGB,
// optionally tonemapped with a luminance-preserving ACES curve plus a
// highlight-desaturation ("crosstalk") pass, and finally gamma-encoded.
//
// # Quick Start
//
//	import "github.com/gogpu/postfx"
//
//	cfg := postfx.DefaultConfig()
//	cfg.SetColorShift(1, 0, 0, 0.3) // red damage flash
//
//	p := postfx.NewPipeline()
//	defer p.Close()
//	p.ProcessPixmap(frame, &cfg)
//
// Single samples go through postfx.Process, which is a pure function and
// needs no Pipeline.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Color, Config, Layer, Pipeline, Pixmap
//   - colorspace: linear RGB to/from XYZ, xyY, HSL, HSV, sRGB, HCY,
//     YCbCr and approximate OKLab
//   - blend: the 26-mode compositing table with opacity-weighted variants
//   - tonemap: ACES filmic curve, crosstalk, and the gamma stage
//   - internal/parallel: the worker pool behind frame processing
//
// # Concurrency
//
// Every pixel is processed independently from read-only configuration, so
// frames parallelize trivially. A Config must not be mutated while a frame
// that reads it is in flight; swap in a new value between frames instead.
//
// # Error Model
//
// The pixel path never fails. Out-of-range enum values degrade to identity
// or additive behavior and non-finite intermediates are clamped into range,
// so a malformed configuration yields wrong-but-stable colors rather than
// a crashed render loop. Config.Validate catches such mistakes at frame
// setup when wanted.
package postfx
