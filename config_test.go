package postfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/postfx/blend"
	"github.com/gogpu/postfx/colorspace"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, colorspace.Linear, cfg.Space)
	assert.Equal(t, blend.ModeDefault, cfg.Mode)
	assert.True(t, cfg.ToneMap.Enabled)
	assert.True(t, cfg.ToneMap.Crosstalk)
	assert.Equal(t, float32(DefaultBrightness), cfg.ToneMap.Brightness)
	assert.InDelta(t, 1/DefaultGamma, float64(cfg.ToneMap.InvGamma), 1e-6)

	for i, l := range cfg.Layers {
		assert.Equal(t, float32(0), l.Opacity(), "layer %d should start empty", i)
	}
}

func TestSetColorShift(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layers[3] = Layer{Color: RGBA(1, 1, 1, 1)}

	cfg.SetColorShift(0.8, 0.1, 0.1, 0.3)

	assert.Equal(t, RGBA(0.8, 0.1, 0.1, 0.3), cfg.Layers[0].Color)
	assert.Equal(t, float32(0.3), cfg.Layers[0].Opacity())
	for _, l := range cfg.Layers[1:] {
		assert.Equal(t, Layer{}, l, "remaining layers must be cleared")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(c *Config) {}, true},
		{"max enums", func(c *Config) {
			c.Space = colorspace.OKLab
			c.Mode = blend.ModeVividLight
		}, true},
		{"space out of range", func(c *Config) { c.Space = colorspace.Space(9) }, false},
		{"mode out of range", func(c *Config) { c.Mode = blend.Mode(26) }, false},
		{"zero brightness", func(c *Config) { c.ToneMap.Brightness = 0 }, false},
		{"negative gamma", func(c *Config) { c.ToneMap.InvGamma = -1 }, false},
		{"opacity above one", func(c *Config) {
			c.Layers[1] = Layer{Color: RGBA(1, 0, 0, 1.5)}
		}, false},
		{"opacity below zero", func(c *Config) {
			c.Layers[2] = Layer{Color: RGBA(1, 0, 0, -0.1)}
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

// TestValidateFailureStillProcesses: an invalid config is a quality
// problem, not a safety one; Process must still produce stable output.
func TestValidateFailureStillProcesses(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Space = colorspace.Space(42)
	require.Error(t, cfg.Validate())

	out := Process(RGBA(0.5, 0.5, 0.5, 1), &cfg)
	assert.GreaterOrEqual(t, out.R, float32(0))
	assert.LessOrEqual(t, out.R, float32(1))
}
