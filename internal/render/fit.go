package render

// fitStep is the fixed size decrement between fit attempts. Each render
// pass runs the solver at most three times (two title lines and the
// subtitle), so the O((max-min)/step) measurement loop is not a concern.
const fitStep = 2

// DefaultMinSize is the size floor used by callers that don't have a more
// specific one, in native units (callers scale it).
const DefaultMinSize = 24

// FitResult is the resolved size and tracked width for one text block at
// one render pass. It is recomputed every pass and must not be reused
// across passes with a different scale.
type FitResult struct {
	Size  float64
	Width float64
}

// Fit finds the largest font size, stepping down from maxSize, at which the
// tracked width of text fits maxWidth. The size never drops below minSize;
// at the floor the returned width may still exceed maxWidth, so overflow is
// reported rather than hidden or clipped.
func Fit(s Surface, text string, maxWidth, maxSize, minSize float64, family string, weight Weight, letter float64) FitResult {
	size := maxSize
	s.SetFont(FontSpec{Weight: weight, Size: size, Family: family})
	width := MeasureTracked(s, text, letter)

	for width > maxWidth && size > minSize {
		size -= fitStep
		if size < minSize {
			size = minSize
		}
		s.SetFont(FontSpec{Weight: weight, Size: size, Family: family})
		width = MeasureTracked(s, text, letter)
	}

	return FitResult{Size: size, Width: width}
}
