package render

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// RasterSurface is the Surface implementation over an in-memory RGBA
// canvas. The live display blits it to the framebuffer; exports encode it
// to PNG directly.
type RasterSurface struct {
	img *image.RGBA
	lib *FontLibrary

	curSpec     FontSpec
	curFace     font.Face
	curColor    color.Color
	curBaseline Baseline
}

func NewRasterSurface(width, height int, lib *FontLibrary) *RasterSurface {
	return &RasterSurface{
		img:      image.NewRGBA(image.Rect(0, 0, width, height)),
		lib:      lib,
		curColor: color.White,
	}
}

// Image exposes the backing canvas for blitting and encoding.
func (s *RasterSurface) Image() *image.RGBA { return s.img }

func (s *RasterSurface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *RasterSurface) SetFont(spec FontSpec) {
	if s.curFace != nil && spec == s.curSpec {
		return
	}
	face, err := s.lib.Face(spec)
	if err != nil {
		// Face minting only fails for corrupt font data, which Register
		// already rejected; keep the previous face rather than crash a
		// render pass.
		return
	}
	s.curSpec = spec
	s.curFace = face
}

func (s *RasterSurface) SetColor(c color.Color) { s.curColor = c }

func (s *RasterSurface) SetBaseline(b Baseline) { s.curBaseline = b }

func (s *RasterSurface) MeasureText(text string) float64 {
	if text == "" || s.curFace == nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(s.curFace, text))
}

func (s *RasterSurface) DrawText(text string, x, y float64) {
	if text == "" || s.curFace == nil {
		return
	}
	baseline := y
	if s.curBaseline == BaselineTop {
		baseline += fixedToFloat(s.curFace.Metrics().Ascent)
	}
	drawer := &font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(s.curColor),
		Face: s.curFace,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(baseline)},
	}
	drawer.DrawString(text)
}

func (s *RasterSurface) Fill(c color.Color, alpha float64) {
	if alpha >= 1 {
		draw.Draw(s.img, s.img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
		return
	}
	if alpha <= 0 {
		return
	}
	r, g, b, _ := c.RGBA()
	src := &image.Uniform{C: color.NRGBA{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
		A: uint8(alpha*255 + 0.5),
	}}
	draw.Draw(s.img, s.img.Bounds(), src, image.Point{}, draw.Over)
}

func (s *RasterSurface) DrawImage(img image.Image, dst image.Rectangle, alpha float64, blend BlendMode) {
	if img == nil || dst.Empty() || alpha <= 0 {
		return
	}

	// Stretch the source into a temporary canvas first so blending works on
	// aligned pixels.
	scaled := image.NewRGBA(dst)
	xdraw.ApproxBiLinear.Scale(scaled, dst, img, img.Bounds(), xdraw.Src, nil)

	switch {
	case blend == BlendMultiply:
		s.blendMultiply(scaled, dst, alpha)
	case alpha >= 1:
		draw.Draw(s.img, dst, scaled, dst.Min, draw.Over)
	default:
		s.blendAlpha(scaled, dst, alpha)
	}
}

// blendMultiply computes out = (1-a)*dst + a*(dst*src/255) per channel,
// i.e. a multiply blend drawn at opacity a.
func (s *RasterSurface) blendMultiply(src *image.RGBA, rect image.Rectangle, alpha float64) {
	rect = rect.Intersect(s.img.Bounds())
	a := uint32(alpha*256 + 0.5)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		di := s.img.PixOffset(rect.Min.X, y)
		si := src.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			for c := 0; c < 3; c++ {
				d := uint32(s.img.Pix[di+c])
				mul := d * uint32(src.Pix[si+c]) / 255
				s.img.Pix[di+c] = uint8((d*(256-a) + mul*a) >> 8)
			}
			s.img.Pix[di+3] = 0xFF
			di += 4
			si += 4
		}
	}
}

func (s *RasterSurface) blendAlpha(src *image.RGBA, rect image.Rectangle, alpha float64) {
	rect = rect.Intersect(s.img.Bounds())
	a := uint32(alpha*256 + 0.5)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		di := s.img.PixOffset(rect.Min.X, y)
		si := src.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			for c := 0; c < 3; c++ {
				d := uint32(s.img.Pix[di+c])
				v := uint32(src.Pix[si+c])
				s.img.Pix[di+c] = uint8((d*(256-a) + v*a) >> 8)
			}
			s.img.Pix[di+3] = 0xFF
			di += 4
			si += 4
		}
	}
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v*64 + 0.5) }
