package postfx

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/chewxy/math32"
)

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(4, 3)
	if pm.Width() != 4 || pm.Height() != 3 {
		t.Fatalf("dimensions = %dx%d, want 4x3", pm.Width(), pm.Height())
	}

	c := RGBA(1.5, 0.5, 0.25, 1) // HDR values survive storage
	pm.SetPixel(2, 1, c)
	if got := pm.GetPixel(2, 1); got != c {
		t.Errorf("GetPixel = %v, want %v", got, c)
	}

	// Out-of-bounds access is ignored / transparent.
	pm.SetPixel(-1, 0, c)
	pm.SetPixel(4, 0, c)
	if got := pm.GetPixel(99, 99); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %v, want Transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Clear(RGBA(0.25, 0.5, 0.75, 1))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if got := pm.GetPixel(x, y); got != RGBA(0.25, 0.5, 0.75, 1) {
				t.Errorf("pixel (%d,%d) = %v after Clear", x, y, got)
			}
		}
	}
}

// TestFromImageLinearizes checks decoding applies the sRGB transfer:
// mid-gray 128 must land well below 0.5 in linear light.
func TestFromImageLinearizes(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 128, G: 128, B: 128, A: 255})

	pm := FromImage(img)
	got := pm.GetPixel(0, 0)
	if got.R > 0.25 || got.R < 0.2 {
		t.Errorf("linearized mid-gray = %v, want ~0.215", got.R)
	}
	if got.A != 1 {
		t.Errorf("alpha = %v, want 1 (alpha stays linear)", got.A)
	}
}

// TestToImageClamps checks HDR and negative values clamp to the 8-bit
// range without wrapping.
func TestToImageClamps(t *testing.T) {
	pm := NewPixmap(2, 1)
	pm.SetPixel(0, 0, RGBA(2, -1, 0.5, 1))
	pm.SetPixel(1, 0, RGBA(0, 1, 0.25, 0.5))

	img := pm.ToImage()
	p0 := img.NRGBAAt(0, 0)
	if p0.R != 255 || p0.G != 0 {
		t.Errorf("pixel 0 = %v, want clamped", p0)
	}
	p1 := img.NRGBAAt(1, 0)
	if p1.G != 255 {
		t.Errorf("pixel 1 = %v, want full green", p1)
	}
	if math32.Abs(float32(p1.A)-127.5) > 1 {
		t.Errorf("alpha = %d, want ~127", p1.A)
	}
}

func TestSavePNG(t *testing.T) {
	pm := NewPixmap(8, 8)
	pm.Clear(RGBA(1, 0, 0, 1))

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output missing: %v", err)
	}

	// Unwritable path must surface a wrapped error, not panic.
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "no", "such", "dir.png")); err == nil {
		t.Error("expected error for missing directory")
	}
}
