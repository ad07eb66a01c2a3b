package render

import "unicode/utf8"

// MeasureTracked returns the width of text with letter pixels of tracking
// added between consecutive glyphs (letter may be negative).
//
// The tracked width is the whole-string advance plus a uniform per-gap
// correction, not a sum of individual glyph advances. Fitted sizes depend on
// this exact formula; substituting per-glyph summation would change them.
func MeasureTracked(s Surface, text string, letter float64) float64 {
	if letter == 0 {
		return s.MeasureText(text)
	}
	gaps := utf8.RuneCountInString(text) - 1
	if gaps < 0 {
		gaps = 0
	}
	return s.MeasureText(text) + letter*float64(gaps)
}

// DrawTracked draws text starting at (x, y), inserting letter pixels after
// each glyph. With zero tracking the whole string goes down in one call;
// otherwise each rune is drawn at the running cursor, which advances by that
// rune's own measured width plus letter. The surface's current font, color
// and baseline apply to every individual draw, so mixed-size tracked runs
// are not supported.
func DrawTracked(s Surface, text string, x, y, letter float64) {
	if letter == 0 {
		s.DrawText(text, x, y)
		return
	}
	for _, r := range text {
		glyph := string(r)
		s.DrawText(glyph, x, y)
		x += s.MeasureText(glyph) + letter
	}
}
