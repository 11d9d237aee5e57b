// Command postfxdemo runs the postfx color pipeline over a PNG image.
package main

import (
	"flag"
	"image"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/draw"

	"github.com/gogpu/postfx"
	"github.com/gogpu/postfx/blend"
	"github.com/gogpu/postfx/colorspace"
)

func main() {
	var (
		input      = flag.String("input", "", "input PNG (empty generates a test gradient)")
		output     = flag.String("output", "out.png", "output file")
		width      = flag.Int("width", 0, "rescale input to this width (0 keeps original)")
		shift      = flag.String("shift", "#ff000040", "color shift as hex RGBA")
		mode       = flag.Int("mode", int(blend.ModeNormal), "blend mode (0-25)")
		space      = flag.Int("space", int(colorspace.Linear), "working color space (0-8)")
		brightness = flag.Float64("brightness", postfx.DefaultBrightness, "pre-tonemap brightness")
		gamma      = flag.Float64("gamma", postfx.DefaultGamma, "display gamma")
		noTonemap  = flag.Bool("no-tonemap", false, "disable the filmic curve")
	)
	flag.Parse()

	frame := loadFrame(*input, *width)

	cfg := postfx.DefaultConfig()
	cfg.Space = colorspace.Space(*space)
	cfg.Mode = blend.Mode(*mode)
	cfg.ToneMap.Enabled = !*noTonemap
	cfg.ToneMap.Brightness = float32(*brightness)
	cfg.ToneMap.InvGamma = 1 / float32(*gamma)
	c := postfx.Hex(*shift)
	cfg.SetColorShift(c.R, c.G, c.B, c.A)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	p := postfx.NewPipeline()
	defer p.Close()
	p.ProcessPixmap(frame, &cfg)

	if err := frame.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Wrote %s (%dx%d)\n", *output, frame.Width(), frame.Height())
}

// loadFrame reads and optionally rescales the input PNG, or generates a
// gradient test card when no input is given.
func loadFrame(path string, width int) *postfx.Pixmap {
	if path == "" {
		return gradientFrame(512, 512)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		log.Fatalf("Failed to decode input: %v", err)
	}

	if width > 0 && width != img.Bounds().Dx() {
		height := img.Bounds().Dy() * width / img.Bounds().Dx()
		scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = scaled
	}

	return postfx.FromImage(img)
}

// gradientFrame builds an HDR gradient ramp with hue bands, a useful torture
// test for the tonemapper: the top rows exceed display range.
func gradientFrame(w, h int) *postfx.Pixmap {
	pm := postfx.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		// 4x over display white at the top, fading to black.
		intensity := 4 * float32(h-y) / float32(h)
		for x := 0; x < w; x++ {
			band := x * 6 / w
			var c postfx.Color
			switch band {
			case 0:
				c = postfx.RGB(1, 0, 0)
			case 1:
				c = postfx.RGB(1, 1, 0)
			case 2:
				c = postfx.RGB(0, 1, 0)
			case 3:
				c = postfx.RGB(0, 1, 1)
			case 4:
				c = postfx.RGB(0, 0, 1)
			default:
				c = postfx.RGB(1, 1, 1)
			}
			pm.SetPixel(x, y, postfx.RGBA(c.R*intensity, c.G*intensity, c.B*intensity, 1))
		}
	}
	return pm
}
