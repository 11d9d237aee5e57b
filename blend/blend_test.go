package blend

import (
	"testing"

	"github.com/chewxy/math32"
)

func floatNear(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}

func vecNear(a, b [3]float32, tol float32) bool {
	return floatNear(a[0], b[0], tol) && floatNear(a[1], b[1], tol) && floatNear(a[2], b[2], tol)
}

// allModes lists every defined mode including the unnamed default.
func allModes() []Mode {
	modes := make([]Mode, NumModes)
	for i := range modes {
		modes[i] = Mode(i)
	}
	return modes
}

var blendInputs = [][2][3]float32{
	{{0, 0, 0}, {0, 0, 0}},
	{{1, 1, 1}, {1, 1, 1}},
	{{0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}},
	{{1, 0, 0}, {0, 0, 1}},
	{{0.25, 0.5, 0.75}, {0.75, 0.5, 0.25}},
	{{0.1, 0.9, 0.4}, {0.6, 0.3, 0.8}},
	{{0, 1, 0.5}, {1, 0, 0.5}},
}

// TestFormulas checks each named mode against hand-computed values for
// base (0.25, 0.5, 0.75) and overlay (0.75, 0.5, 0.25).
func TestFormulas(t *testing.T) {
	base := [3]float32{0.25, 0.5, 0.75}
	overlay := [3]float32{0.75, 0.5, 0.25}

	tests := []struct {
		mode Mode
		want [3]float32
	}{
		{ModeNormal, [3]float32{0.75, 0.5, 0.25}},
		{ModeAdd, [3]float32{1, 1, 1}},
		{ModeAverage, [3]float32{0.5, 0.5, 0.5}},
		// 1-(1-b)/v floored at 0: (1-0.75/0.75, 1-0.5/0.5, 1-0.25/0.25)
		{ModeColorBurn, [3]float32{0, 0, 0}},
		// b/(1-v) capped at 1: (1, 1, 1)
		{ModeColorDodge, [3]float32{1, 1, 1}},
		{ModeDarken, [3]float32{0.25, 0.5, 0.25}},
		{ModeDifference, [3]float32{0.5, 0, 0.5}},
		// b+v-2bv
		{ModeExclusion, [3]float32{0.625, 0.5, 0.625}},
		// Reflect(v, b): v^2/(1-b) capped
		{ModeGlow, [3]float32{0.75, 0.5, 0.25}},
		// Overlay(v, b): v<0.5 ? 2vb : 1-2(1-v)(1-b)
		{ModeHardLight, [3]float32{0.625, 0.5, 0.375}},
		// VividLight(0.25,0.75)=ColorDodge(0.25,0.5)=0.5 -> 1; mid 0.5->1; VividLight(0.75,0.25)=ColorBurn(0.75,0.5)=0.5 -> 1
		{ModeHardMix, [3]float32{1, 1, 1}},
		{ModeLighten, [3]float32{0.75, 0.5, 0.75}},
		{ModeLinearBurn, [3]float32{0, 0, 0}},
		{ModeLinearDodge, [3]float32{1, 1, 1}},
		// v<0.5 ? LinearBurn(b,2v) : Add(b,2(v-0.5)); (Add(0.25,0.5), Add(0.5,0), LinearBurn(0.75,0.5))
		{ModeLinearLight, [3]float32{0.75, 0.5, 0.25}},
		{ModeMultiply, [3]float32{0.1875, 0.25, 0.1875}},
		// 1-|1-b-v|
		{ModeNegation, [3]float32{1, 1, 1}},
		// b<0.5 ? 2bv : 1-2(1-b)(1-v)
		{ModeOverlay, [3]float32{0.375, 0.5, 0.625}},
		// min-max+1
		{ModePhoenix, [3]float32{0.5, 1, 0.5}},
		// v<0.5 ? Darken(b,2v) : Lighten(b,2(v-0.5))
		{ModePinLight, [3]float32{0.5, 0.5, 0.5}},
		// b^2/(1-v) capped: (0.25, 0.5, 0.75)
		{ModeReflect, [3]float32{0.25, 0.5, 0.75}},
		// 1-(1-b)(1-v)
		{ModeScreen, [3]float32{0.8125, 0.75, 0.8125}},
		// v>=0.5: sqrt(b)(2v-1)+2b(1-v); v<0.5: 2bv+b^2(1-2v)
		{ModeSoftLight, [3]float32{0.375, 0.5, 0.65625}},
		{ModeSubtract, [3]float32{0, 0, 0}},
		// v>=0.5: ColorDodge(b,2(v-0.5)); v<0.5: ColorBurn(b,2v)
		{ModeVividLight, [3]float32{0.5, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := Blend(tt.mode, base, overlay)
			if !vecNear(got, tt.want, 1e-5) {
				t.Errorf("Blend(%v, %v, %v) = %v, want %v", tt.mode, base, overlay, got, tt.want)
			}
		})
	}
}

// TestOpacityBoundaries checks the boundary law for every mode:
// opacity 0 returns base exactly, opacity 1 matches the unweighted blend.
func TestOpacityBoundaries(t *testing.T) {
	for _, mode := range allModes() {
		for _, in := range blendInputs {
			base, overlay := in[0], in[1]

			if got := BlendWeighted(mode, base, overlay, 0); got != base {
				t.Errorf("BlendWeighted(%v, %v, %v, 0) = %v, want base", mode, base, overlay, got)
			}

			got := BlendWeighted(mode, base, overlay, 1)
			var want [3]float32
			if mode == ModeDefault {
				want = overlay
			} else {
				want = Blend(mode, base, overlay)
			}
			if !vecNear(got, want, 1e-6) {
				t.Errorf("BlendWeighted(%v, %v, %v, 1) = %v, want %v", mode, base, overlay, got, want)
			}
		}
	}
}

// TestSharedFormulaAliases checks the enumerator pairs that share one
// implementation produce bit-identical results.
func TestSharedFormulaAliases(t *testing.T) {
	for _, in := range blendInputs {
		base, overlay := in[0], in[1]
		if Blend(ModeAdd, base, overlay) != Blend(ModeLinearDodge, base, overlay) {
			t.Errorf("Add and LinearDodge diverge for %v, %v", base, overlay)
		}
		if Blend(ModeSubtract, base, overlay) != Blend(ModeLinearBurn, base, overlay) {
			t.Errorf("Subtract and LinearBurn diverge for %v, %v", base, overlay)
		}
	}
}

// TestDefaultModeAsymmetry pins down the inherited quirk: the unweighted
// default is additive, the weighted default is a plain lerp to the overlay.
func TestDefaultModeAsymmetry(t *testing.T) {
	base := [3]float32{0.5, 0.25, 0.75}
	overlay := [3]float32{0.75, 0.25, 0.5}

	unweighted := Blend(ModeDefault, base, overlay)
	if !vecNear(unweighted, [3]float32{1, 0.5, 1}, 1e-6) {
		t.Errorf("unweighted default = %v, want clamped sum", unweighted)
	}

	weighted := BlendWeighted(ModeDefault, base, overlay, 0.5)
	want := [3]float32{0.625, 0.25, 0.625}
	if !vecNear(weighted, want, 1e-6) {
		t.Errorf("weighted default = %v, want lerp %v", weighted, want)
	}
}

// TestUnknownModeFallback checks dispatch is total: out-of-range modes act
// like the default branches.
func TestUnknownModeFallback(t *testing.T) {
	base := [3]float32{0.2, 0.4, 0.6}
	overlay := [3]float32{0.3, 0.3, 0.3}

	for _, mode := range []Mode{Mode(NumModes), Mode(99), Mode(255)} {
		if got, want := Blend(mode, base, overlay), Blend(ModeDefault, base, overlay); got != want {
			t.Errorf("Blend(%d) = %v, want default %v", mode, got, want)
		}
		got := BlendWeighted(mode, base, overlay, 0.5)
		want := BlendWeighted(ModeDefault, base, overlay, 0.5)
		if got != want {
			t.Errorf("BlendWeighted(%d) = %v, want default %v", mode, got, want)
		}
	}
}

// TestSingularGuards checks the division-prone modes at their guarded
// points.
func TestSingularGuards(t *testing.T) {
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"ColorBurn at v=0", colorBurn(0.5, 0), 0},
		{"ColorDodge at v=1", colorDodge(0.5, 1), 1},
		{"Reflect at v=1", reflect(0.5, 1), 1},
		{"Glow at b=1", glow(1, 0.5), 1},
		{"VividLight at v=0", vividLight(0.5, 0), 0},
		{"VividLight at v=1", vividLight(0.5, 1), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

// TestModeString checks a few mode names and the fallback.
func TestModeString(t *testing.T) {
	if got := ModeVividLight.String(); got != "VividLight" {
		t.Errorf("ModeVividLight.String() = %q", got)
	}
	if got := Mode(200).String(); got != "Default" {
		t.Errorf("Mode(200).String() = %q, want fallback", got)
	}
}
