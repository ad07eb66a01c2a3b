package render

import (
	"fmt"
	"image"
	"image/color"
)

// Surface is the drawing target a compose pass runs against. The live
// display canvas and the transient native-resolution export canvas both
// implement it, so one compositor produces proportionally identical output
// on either.
//
// Font, fill color and baseline are surface state, mirroring how 2D drawing
// surfaces expose them. Callers must set the font immediately before each
// measure or draw call and never assume it survived unrelated operations.
type Surface interface {
	// Size returns the target dimensions in pixels.
	Size() (width, height int)

	// SetFont makes spec the current font for subsequent measure/draw calls.
	SetFont(spec FontSpec)
	SetColor(c color.Color)
	SetBaseline(b Baseline)

	// MeasureText returns the advance width of text at the current font.
	// The empty string measures 0.
	MeasureText(text string) float64

	// DrawText draws text at (x, y) with the current font, color and
	// baseline. For BaselineTop, y is the top of the glyph box; for
	// BaselineAlphabetic, y is the baseline itself.
	DrawText(text string, x, y float64)

	// Fill covers the whole target with c at the given opacity.
	Fill(c color.Color, alpha float64)

	// DrawImage composites img stretched into dst with the given opacity
	// and blend mode.
	DrawImage(img image.Image, dst image.Rectangle, alpha float64, blend BlendMode)
}

// Baseline selects how the y coordinate of DrawText is interpreted.
type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
)

// BlendMode selects how DrawImage combines source and destination pixels.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendMultiply
)

// Weight is a CSS-style numeric weight token. Only the two weights the
// layout uses are mapped to concrete font files.
type Weight string

const (
	WeightNormal Weight = "400"
	WeightBlack  Weight = "900"
)

// FontSpec identifies a font variant at a concrete pixel size.
type FontSpec struct {
	Weight Weight
	Size   float64 // pixels
	Family string
}

// String renders the spec in CSS shorthand order (weight, size, quoted
// family, generic fallback). It doubles as the face cache key.
func (s FontSpec) String() string {
	return fmt.Sprintf("%s %gpx %q, sans-serif", s.Weight, s.Size, s.Family)
}
