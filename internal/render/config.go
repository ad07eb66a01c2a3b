package render

// Layout constants, all in native units. The compositor multiplies them by
// the active scale before use so every render target gets the same visual
// proportions.
const (
	// paddingFrac is the horizontal padding as a fraction of native width;
	// the text column is the native width minus twice the padding.
	paddingFrac = 0.08

	title1MaxSize = 260
	titleTracking = -2
	title1Advance = 0.95 // fraction of the resolved size
	title1Gap     = 8

	// Title line 2 may grow up to three times the line-1 cap and never
	// shrinks below it.
	title2MaxFactor = 3
	title2Advance   = 0.9
	title2Gap       = 18

	subtitleMaxSize   = 120
	subtitleMinSize   = 40
	subtitleGapBefore = 48
	subtitleGapAfter  = 32
	// subtitleLumDelta dims the subtitle slightly relative to the tint.
	subtitleLumDelta = -0.06

	// The author line is never fitted; overflow is accepted.
	authorSize = 175

	logoMargin = 75
	logoScale  = 1.0

	// Background photo opacity under the multiply blend, and the opacity of
	// the tint wash drawn over it.
	backgroundOpacity = 0.8
	washOpacity       = 0.3
)
