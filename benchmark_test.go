package postfx

import (
	"testing"

	"github.com/gogpu/postfx/blend"
	"github.com/gogpu/postfx/colorspace"
)

func BenchmarkProcessLinear(b *testing.B) {
	cfg := DefaultConfig()
	cfg.SetColorShift(1, 0.3, 0.1, 0.4)
	in := RGBA(0.4, 0.5, 0.6, 1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Process(in, &cfg)
	}
}

func BenchmarkProcessHSV(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Space = colorspace.HSV
	cfg.Mode = blend.ModeOverlay
	cfg.SetColorShift(1, 0.3, 0.1, 0.4)
	in := RGBA(0.4, 0.5, 0.6, 1)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Process(in, &cfg)
	}
}

func BenchmarkProcessPixmap(b *testing.B) {
	cfg := DefaultConfig()
	cfg.SetColorShift(1, 0.3, 0.1, 0.4)

	pm := NewPixmap(256, 256)
	pm.Clear(RGBA(0.4, 0.5, 0.6, 1))

	p := NewPipeline()
	defer p.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.ProcessPixmap(pm, &cfg)
	}
}
