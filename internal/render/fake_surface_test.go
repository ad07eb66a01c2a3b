package render

import (
	"image"
	"image/color"
	"unicode/utf8"
)

// fakeSurface implements Surface with deterministic linear metrics: every
// rune is unit*size pixels wide. It records every draw, fill and image call
// so tests can assert on the exact sequence a compose pass produces.
type fakeSurface struct {
	w, h int
	unit float64

	font     FontSpec
	color    color.Color
	baseline Baseline

	texts  []textCall
	fills  []fillCall
	images []imageCall
}

type textCall struct {
	text     string
	x, y     float64
	font     FontSpec
	color    color.Color
	baseline Baseline
}

type fillCall struct {
	color color.Color
	alpha float64
}

type imageCall struct {
	dst   image.Rectangle
	alpha float64
	blend BlendMode
}

func newFakeSurface(w, h int, unit float64) *fakeSurface {
	return &fakeSurface{w: w, h: h, unit: unit, color: color.White}
}

func (s *fakeSurface) Size() (int, int) { return s.w, s.h }

func (s *fakeSurface) SetFont(spec FontSpec) { s.font = spec }

func (s *fakeSurface) SetColor(c color.Color) { s.color = c }

func (s *fakeSurface) SetBaseline(b Baseline) { s.baseline = b }

func (s *fakeSurface) MeasureText(text string) float64 {
	return float64(utf8.RuneCountInString(text)) * s.font.Size * s.unit
}

func (s *fakeSurface) DrawText(text string, x, y float64) {
	s.texts = append(s.texts, textCall{text: text, x: x, y: y, font: s.font, color: s.color, baseline: s.baseline})
}

func (s *fakeSurface) Fill(c color.Color, alpha float64) {
	s.fills = append(s.fills, fillCall{color: c, alpha: alpha})
}

func (s *fakeSurface) DrawImage(img image.Image, dst image.Rectangle, alpha float64, blend BlendMode) {
	s.images = append(s.images, imageCall{dst: dst, alpha: alpha, blend: blend})
}
