package postfx

import (
	"github.com/pkg/errors"

	"github.com/gogpu/postfx/blend"
	"github.com/gogpu/postfx/colorspace"
	"github.com/gogpu/postfx/tonemap"
)

// MaxLayers is the fixed size of a LayerStack.
const MaxLayers = 4

// Layer is one color-shift contribution. The color's alpha channel doubles
// as the layer opacity, so a layer is naturally a single RGBA value.
type Layer struct {
	Color Color
}

// Opacity returns the layer's blend weight, which is the alpha channel of
// its color.
func (l Layer) Opacity() float32 {
	return l.Color.A
}

// LayerStack is an ordered, fixed-size sequence of layers. Blending is a
// left fold, so order matters. A zero-opacity layer is a no-op through the
// weighted blend, not by being skipped.
type LayerStack [MaxLayers]Layer

// ToneMapConfig configures the tonemapping and gamma stages.
type ToneMapConfig struct {
	// Enabled runs the filmic curve; when false only the brightness scale
	// and gamma stages apply.
	Enabled bool

	// PreserveLuminance curves scalar luminance and rescales the color,
	// avoiding hue shift. When false the curve applies per channel.
	PreserveLuminance bool

	// Crosstalk desaturates near-clipped highlights after the curve.
	Crosstalk bool

	// CrosstalkUsesLuminance pivots crosstalk on luminance instead of the
	// per-channel maximum.
	CrosstalkUsesLuminance bool

	// Brightness scales the input before tonemapping. Must be positive.
	Brightness float32

	// InvGamma is the exponent of the final gamma encode. Must be positive.
	InvGamma float32
}

// Config is the full per-frame configuration consumed by the pipeline.
// The frame-setup system owns it; during one frame's worth of pixel
// invocations it must be treated as immutable. Swap in a fresh value on a
// frame boundary rather than mutating one a pass may still be reading.
type Config struct {
	// Space is the working color space in which layers are blended.
	Space colorspace.Space

	// Mode is the blend mode applied to every layer.
	Mode blend.Mode

	// Layers is the ordered stack of color-shift layers.
	Layers LayerStack

	// ToneMap configures the tonemapping and gamma stages.
	ToneMap ToneMapConfig
}

// Defaults carried over from the original renderer's uniform block.
const (
	// DefaultBrightness is the pre-tonemap exposure scale.
	DefaultBrightness = 2.5
	// DefaultGamma is the display gamma; the config stores its inverse.
	DefaultGamma = 1.4
)

// DefaultConfig returns a configuration matching the renderer defaults:
// linear working space, default blend mode, empty layer stack, tonemapping
// and crosstalk on.
func DefaultConfig() Config {
	return Config{
		Space: colorspace.Linear,
		Mode:  blend.ModeDefault,
		ToneMap: ToneMapConfig{
			Enabled:                true,
			PreserveLuminance:      true,
			Crosstalk:              true,
			CrosstalkUsesLuminance: false,
			Brightness:             DefaultBrightness,
			InvGamma:               1 / DefaultGamma,
		},
	}
}

// SetColorShift writes a single full-screen color shift into layer 0 and
// clears the remaining layers. This mirrors the one-uniform shift the
// original renderer drives for damage flashes and item pickups.
func (c *Config) SetColorShift(r, g, b, a float32) {
	c.Layers = LayerStack{}
	c.Layers[0] = Layer{Color: RGBA(r, g, b, a)}
}

// Validate reports configuration values that would degrade output.
// The pipeline itself never fails on a bad config (unknown enums fall back
// to identity or additive behavior); Validate exists so frame setup can
// catch mistakes early.
func (c *Config) Validate() error {
	if c.Space > colorspace.OKLab {
		return errors.Errorf("color space %d out of range", c.Space)
	}
	if c.Mode >= blend.NumModes {
		return errors.Errorf("blend mode %d out of range", c.Mode)
	}
	if !(c.ToneMap.Brightness > 0) {
		return errors.New("brightness must be positive")
	}
	if !(c.ToneMap.InvGamma > 0) {
		return errors.New("inverse gamma must be positive")
	}
	for i, l := range c.Layers {
		if l.Opacity() < 0 || l.Opacity() > 1 {
			return errors.Errorf("layer %d opacity %v outside [0,1]", i, l.Opacity())
		}
	}
	return nil
}

// tonemapConfig lowers the frame-level settings to the tonemap package's
// stage selection.
func (c *Config) tonemapConfig() tonemap.Config {
	return tonemap.Config{
		Enabled:                c.ToneMap.Enabled,
		PreserveLuminance:      c.ToneMap.PreserveLuminance,
		Crosstalk:              c.ToneMap.Crosstalk,
		CrosstalkUsesLuminance: c.ToneMap.CrosstalkUsesLuminance,
	}
}
