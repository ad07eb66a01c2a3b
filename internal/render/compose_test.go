package render

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/quartopress/coverforge/internal/state"
)

func testScene(native image.Point, scale float64) Scene {
	return Scene{
		TitleFamily: "Title Test",
		BodyFamily:  "Body Test",
		Native:      native,
		Scale:       scale,
	}
}

func TestComposeEmptyFieldsDrawsNoText(t *testing.T) {
	s := newFakeSurface(800, 1280, 0.5)
	sc := testScene(image.Pt(800, 1280), 1)
	sc.Background = image.NewRGBA(image.Rect(0, 0, 10, 10))
	sc.Logo = image.NewRGBA(image.Rect(0, 0, 4, 4))

	Compose(s, sc, state.Fields{Tint: "#2b6e9e"})

	if len(s.texts) != 0 {
		t.Errorf("text draw calls = %d, want none for an empty record", len(s.texts))
	}
	if len(s.fills) != 2 {
		t.Fatalf("fill calls = %d, want tint fill and wash", len(s.fills))
	}
	if s.fills[0].alpha != 1 {
		t.Errorf("base fill alpha = %v, want 1", s.fills[0].alpha)
	}
	if s.fills[1].alpha != 0.3 {
		t.Errorf("wash alpha = %v, want 0.3", s.fills[1].alpha)
	}
	if len(s.images) != 2 {
		t.Fatalf("image calls = %d, want background and logo", len(s.images))
	}
	bg := s.images[0]
	if bg.blend != BlendMultiply || bg.alpha != 0.8 {
		t.Errorf("background composited with %+v, want multiply at 0.8", bg)
	}
	if bg.dst != image.Rect(0, 0, 800, 1280) {
		t.Errorf("background dst = %v, want full target", bg.dst)
	}
}

func TestComposeInvalidDimensionsIsNoOp(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		native image.Point
		scale  float64
	}{
		{"zero target width", 0, 100, image.Pt(100, 100), 1},
		{"zero target height", 100, 0, image.Pt(100, 100), 1},
		{"zero native", 100, 100, image.Pt(0, 0), 1},
		{"zero scale", 100, 100, image.Pt(100, 100), 0},
		{"negative scale", 100, 100, image.Pt(100, 100), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFakeSurface(tt.w, tt.h, 0.5)
			Compose(s, testScene(tt.native, tt.scale), state.Fields{Title1: "X", Tint: "#fff"})
			if len(s.fills)+len(s.texts)+len(s.images) != 0 {
				t.Error("compose drew despite invalid dimensions")
			}
		})
	}
}

func TestComposeScaleInvariance(t *testing.T) {
	fields := state.Fields{
		Tint:     "#2b6e9e",
		Title1:   "WINTER",
		Title2:   "LIGHT",
		Subtitle: "a novel of the north",
		Author:   "M. HALVORSEN",
	}
	native := image.Pt(1600, 2560)

	// Keep text short enough that every block fits at its maximum size, so
	// fitted sizes are exactly proportional across scales.
	base := newFakeSurface(1600, 2560, 0.02)
	Compose(base, testScene(native, 1), fields)

	const scale = 2.0
	scaled := newFakeSurface(3200, 5120, 0.02)
	Compose(scaled, testScene(native, scale), fields)

	if len(base.texts) == 0 || len(base.texts) != len(scaled.texts) {
		t.Fatalf("draw call counts differ: %d vs %d", len(base.texts), len(scaled.texts))
	}
	for i := range base.texts {
		b, sc := base.texts[i], scaled.texts[i]
		if b.text != sc.text {
			t.Fatalf("call %d text %q vs %q", i, b.text, sc.text)
		}
		if math.Abs(sc.x-scale*b.x) > 1 || math.Abs(sc.y-scale*b.y) > 1 {
			t.Errorf("call %d (%q) at (%v, %v), want scale x (%v, %v) within 1px",
				i, b.text, sc.x, sc.y, scale*b.x, scale*b.y)
		}
		if math.Abs(sc.font.Size-scale*b.font.Size) > 1e-9 {
			t.Errorf("call %d size %v, want %v", i, sc.font.Size, scale*b.font.Size)
		}
	}
}

func TestComposeOverflowingTitle2StillDrawn(t *testing.T) {
	s := newFakeSurface(1600, 2560, 0.5)
	fields := state.Fields{Tint: "#123456", Title2: "incomprehensibilities"}

	Compose(s, testScene(image.Pt(1600, 2560), 1), fields)

	// Column is 1600 - 2*128 = 1344; at the title2 floor of 260 the word
	// measures far wider. It must be drawn anyway, glyph by glyph.
	if len(s.texts) == 0 {
		t.Fatal("overflowing title2 was not drawn")
	}
	if got := s.texts[0].font.Size; got != 260 {
		t.Errorf("title2 size = %v, want the 260 floor", got)
	}
	column := 1344.0
	if w := MeasureTracked(s, fields.Title2, -2); w <= column {
		t.Errorf("tracked width %v should overflow the %vpx column", w, column)
	}
}

func TestComposeTitleStyling(t *testing.T) {
	s := newFakeSurface(1600, 2560, 0.01)
	Compose(s, testScene(image.Pt(1600, 2560), 1), state.Fields{Tint: "#2b6e9e", Title1: "AA"})

	if len(s.texts) == 0 {
		t.Fatal("title1 not drawn")
	}
	first := s.texts[0]
	if first.font.Weight != WeightBlack {
		t.Errorf("title weight = %v, want black", first.font.Weight)
	}
	if first.font.Family != "Title Test" {
		t.Errorf("title family = %q", first.font.Family)
	}
	if first.baseline != BaselineTop {
		t.Errorf("title baseline = %v, want top", first.baseline)
	}
	if first.color != color.White {
		t.Errorf("title color = %v, want white", first.color)
	}
	// Padding is 8% of native width; the cursor starts there on both axes.
	if first.x != 128 || first.y != 128 {
		t.Errorf("title origin = (%v, %v), want (128, 128)", first.x, first.y)
	}
}

func TestComposeVerticalFlow(t *testing.T) {
	// unit 0.01: a rune is size/100 px wide, so everything fits at max size
	// and the resolved sizes are the caps: 260, 780, 120.
	s := newFakeSurface(1600, 2560, 0.01)
	fields := state.Fields{
		Tint:     "#446688",
		Title1:   "A",
		Title2:   "B",
		Subtitle: "C",
	}
	Compose(s, testScene(image.Pt(1600, 2560), 1), fields)

	if len(s.texts) != 3 {
		t.Fatalf("draw calls = %d, want 3", len(s.texts))
	}

	y1 := 128.0                  // top padding
	y2 := y1 + 0.95*260 + 8      // title1 advance
	y3 := y2 + 0.9*780 + 18 + 48 // title2 advance plus subtitle lead gap

	if got := s.texts[0].y; got != y1 {
		t.Errorf("title1 y = %v, want %v", got, y1)
	}
	if got := s.texts[1].y; got != y2 {
		t.Errorf("title2 y = %v, want %v", got, y2)
	}
	if got := s.texts[2].y; got != y3 {
		t.Errorf("subtitle y = %v, want %v", got, y3)
	}
	if got := s.texts[1].font.Size; got != 780 {
		t.Errorf("title2 size = %v, want 3x the line-1 cap", got)
	}
	if got := s.texts[2].baseline; got != BaselineAlphabetic {
		t.Errorf("subtitle baseline = %v, want alphabetic", got)
	}
	if got := s.texts[2].color; got != ParseHex(Luminance("#446688", -0.06)) {
		t.Errorf("subtitle color = %v, want dimmed tint", got)
	}
}

func TestComposeAuthorRightJustified(t *testing.T) {
	s := newFakeSurface(1600, 2560, 0.5)
	Compose(s, testScene(image.Pt(1600, 2560), 1), state.Fields{Tint: "#000", Author: "JANE DOE"})

	if len(s.texts) != 1 {
		t.Fatalf("draw calls = %d, want 1", len(s.texts))
	}
	call := s.texts[0]
	if call.font.Size != 175 {
		t.Errorf("author size = %v, want fixed 175", call.font.Size)
	}
	// 8 runes at 87.5px = 700; x = 1600 - 128 - 700.
	if call.x != 772 {
		t.Errorf("author x = %v, want 772", call.x)
	}
	if call.y != 1280 {
		t.Errorf("author y = %v, want half the target height", call.y)
	}
}

func TestComposeLogoAnchoredBottomRight(t *testing.T) {
	s := newFakeSurface(1600, 2560, 0.5)
	sc := testScene(image.Pt(1600, 2560), 1)
	sc.Logo = image.NewRGBA(image.Rect(0, 0, 200, 100))

	Compose(s, sc, state.Fields{Tint: "#abc"})

	if len(s.images) != 1 {
		t.Fatalf("image calls = %d, want just the logo", len(s.images))
	}
	want := image.Rect(1600-200-75, 2560-100-75, 1600-75, 2560-75)
	if got := s.images[0].dst; got != want {
		t.Errorf("logo dst = %v, want %v", got, want)
	}
	if s.images[0].blend != BlendNormal || s.images[0].alpha != 1 {
		t.Errorf("logo composite = %+v, want plain draw", s.images[0])
	}
}
