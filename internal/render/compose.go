package render

import (
	"image"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/quartopress/coverforge/internal/state"
)

// Scene is everything one compose pass needs besides the target surface:
// loaded assets, font family names, the native resolution and the scale of
// the active target. It is assembled fresh per pass; Compose itself holds
// no hidden state.
type Scene struct {
	Background image.Image // nil when the photo failed to load
	Logo       image.Image // nil skips the logo step

	TitleFamily string
	BodyFamily  string

	Native image.Point
	Scale  float64

	Log *log.Logger
}

func (sc Scene) logger() *log.Logger {
	if sc.Log != nil {
		return sc.Log
	}
	return log.Default()
}

// Compose renders one full cover pass onto dst: tint fill, photo composite,
// wash, the three fitted text blocks, the author line and the logo. All
// layout constants are native units multiplied by sc.Scale.
//
// Invalid target or native dimensions make the pass a no-op; the next
// trigger simply retries. Every pass starts with a full fill, so a failed
// pass never leaves a partially drawn frame behind.
func Compose(dst Surface, sc Scene, fields state.Fields) {
	targetW, targetH := dst.Size()
	if targetW <= 0 || targetH <= 0 || sc.Native.X <= 0 || sc.Native.Y <= 0 || sc.Scale <= 0 {
		sc.logger().Warn("compose skipped: non-positive dimensions",
			"target_w", targetW, "target_h", targetH,
			"native_w", sc.Native.X, "native_h", sc.Native.Y, "scale", sc.Scale)
		return
	}

	scale := sc.Scale
	tint := ParseHex(fields.Tint)

	// Background: flat tint, then the photo at reduced opacity under a
	// multiply blend, then a translucent tint wash to pull photo and brand
	// color together.
	dst.Fill(tint, 1)
	if sc.Background != nil {
		dst.DrawImage(sc.Background, image.Rect(0, 0, targetW, targetH), backgroundOpacity, BlendMultiply)
	}
	dst.Fill(tint, washOpacity)

	pad := paddingFrac * float64(sc.Native.X) * scale
	column := float64(sc.Native.X)*scale - 2*pad
	tracking := titleTracking * scale

	x := pad
	y := pad

	if fields.Title1 != "" {
		fit := Fit(dst, fields.Title1, column, title1MaxSize*scale, DefaultMinSize*scale,
			sc.TitleFamily, WeightBlack, tracking)
		dst.SetFont(FontSpec{Weight: WeightBlack, Size: fit.Size, Family: sc.TitleFamily})
		dst.SetColor(color.White)
		dst.SetBaseline(BaselineTop)
		DrawTracked(dst, fields.Title1, x, y, tracking)
		y += title1Advance*fit.Size + title1Gap*scale
	}

	if fields.Title2 != "" {
		fit := Fit(dst, fields.Title2, column, title2MaxFactor*title1MaxSize*scale, title1MaxSize*scale,
			sc.TitleFamily, WeightBlack, tracking)
		dst.SetFont(FontSpec{Weight: WeightBlack, Size: fit.Size, Family: sc.TitleFamily})
		dst.SetColor(color.White)
		dst.SetBaseline(BaselineTop)
		DrawTracked(dst, fields.Title2, x, y, tracking)
		y += title2Advance*fit.Size + title2Gap*scale
	}

	if fields.Subtitle != "" {
		y += subtitleGapBefore * scale
		fit := Fit(dst, fields.Subtitle, column, subtitleMaxSize*scale, subtitleMinSize*scale,
			sc.BodyFamily, WeightNormal, 0)
		dst.SetFont(FontSpec{Weight: WeightNormal, Size: fit.Size, Family: sc.BodyFamily})
		dst.SetColor(ParseHex(Luminance(fields.Tint, subtitleLumDelta)))
		dst.SetBaseline(BaselineAlphabetic)
		DrawTracked(dst, fields.Subtitle, x, y, 0)
		y += fit.Size + subtitleGapAfter*scale
	}

	// The author line uses a fixed size and is right-justified on its own
	// baseline at half the target height, independent of the cursor.
	if fields.Author != "" {
		dst.SetFont(FontSpec{Weight: WeightNormal, Size: authorSize * scale, Family: sc.BodyFamily})
		dst.SetColor(color.White)
		dst.SetBaseline(BaselineAlphabetic)
		width := dst.MeasureText(fields.Author)
		dst.DrawText(fields.Author, float64(targetW)-pad-width, float64(targetH)/2)
	}

	if sc.Logo != nil {
		lb := sc.Logo.Bounds()
		w := float64(lb.Dx()) * logoScale * scale
		h := float64(lb.Dy()) * logoScale * scale
		margin := logoMargin * scale
		x0 := float64(targetW) - w - margin
		y0 := float64(targetH) - h - margin
		dst.DrawImage(sc.Logo, image.Rect(int(x0+0.5), int(y0+0.5), int(x0+w+0.5), int(y0+h+0.5)), 1, BlendNormal)
	}
}
