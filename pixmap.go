package postfx

import (
	"image"
	"image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/gogpu/postfx/colorspace"
)

// Pixmap is a rectangular linear-light frame buffer, four float32 values
// per pixel. It stands in for the HDR color attachment the post-process
// pass reads from and writes to.
type Pixmap struct {
	width  int
	height int
	data   []float32 // RGBA, 4 floats per pixel
}

// NewPixmap creates a pixmap with the given dimensions, cleared to
// transparent black.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]float32, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA order, 4 floats per pixel).
func (p *Pixmap) Data() []float32 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-bounds writes are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Out-of-bounds reads return
// Transparent.
func (p *Pixmap) GetPixel(x, y int) Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return Color{
		R: p.data[i+0],
		G: p.data[i+1],
		B: p.data[i+2],
		A: p.data[i+3],
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// FromImage decodes a standard image into a linear-light pixmap, applying
// the exact sRGB transfer function to the color channels. Alpha stays
// linear.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	p := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			c := FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			i := (y*p.width + x) * 4
			p.data[i+0] = colorspace.SRGBToLinear(c.R)
			p.data[i+1] = colorspace.SRGBToLinear(c.G)
			p.data[i+2] = colorspace.SRGBToLinear(c.B)
			p.data[i+3] = c.A
		}
	}
	return p
}

// ToImage converts the pixmap to an 8-bit NRGBA image. The pixel values are
// taken as already display-encoded: the pipeline's gamma stage is the
// encode, so no additional sRGB transfer is applied here.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	for y := 0; y < p.height; y++ {
		for x := 0; x < p.width; x++ {
			i := (y*p.width + x) * 4
			o := img.PixOffset(x, y)
			img.Pix[o+0] = uint8(clamp255(p.data[i+0] * 255))
			img.Pix[o+1] = uint8(clamp255(p.data[i+1] * 255))
			img.Pix[o+2] = uint8(clamp255(p.data[i+2] * 255))
			img.Pix[o+3] = uint8(clamp255(p.data[i+3] * 255))
		}
	}
	return img
}

// SavePNG writes the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create png")
	}
	defer f.Close()

	if err := png.Encode(f, p.ToImage()); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}
