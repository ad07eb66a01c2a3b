package render

import "testing"

func TestFitReturnsMaxSizeWhenTextFits(t *testing.T) {
	// One rune is size/2 px wide, so "hi" at size 100 is 100px.
	s := newFakeSurface(1000, 1000, 0.5)

	got := Fit(s, "hi", 500, 100, 24, "Test", WeightBlack, 0)

	if got.Size != 100 {
		t.Errorf("Size = %v, want exactly maxSize 100", got.Size)
	}
	if got.Width != 100 {
		t.Errorf("Width = %v, want 100", got.Width)
	}
}

func TestFitStepsDownUntilItFits(t *testing.T) {
	s := newFakeSurface(1000, 1000, 0.5)

	// Ten runes: width = 5*size. Fits 300 at size 60.
	got := Fit(s, "0123456789", 300, 100, 24, "Test", WeightNormal, 0)

	if got.Size != 60 {
		t.Errorf("Size = %v, want 60", got.Size)
	}
	if got.Width > 300 {
		t.Errorf("Width = %v exceeds the box", got.Width)
	}
}

func TestFitBounds(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxWidth float64
		maxSize  float64
		minSize  float64
	}{
		{"fits immediately", "a", 1000, 80, 24},
		{"shrinks a little", "mmmmmmmm", 250, 80, 24},
		{"hits the floor", "mmmmmmmmmmmmmmmmmmmmmmmm", 50, 80, 24},
		{"odd gap between bounds", "mmmmmmmm", 10, 79, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newFakeSurface(1000, 1000, 0.5)
			got := Fit(s, tt.text, tt.maxWidth, tt.maxSize, tt.minSize, "Test", WeightNormal, 0)
			if got.Size > tt.maxSize {
				t.Errorf("Size = %v exceeds maxSize %v", got.Size, tt.maxSize)
			}
			if got.Size < tt.minSize {
				t.Errorf("Size = %v below minSize %v", got.Size, tt.minSize)
			}
		})
	}
}

func TestFitOverflowAcceptedAtFloor(t *testing.T) {
	s := newFakeSurface(1000, 1000, 0.5)

	// 40 runes at the 24px floor are 480px wide; the 100px box can't hold
	// them at any allowed size.
	text := "supercalifragilisticexpialidociousssssss"
	got := Fit(s, text, 100, 260, 24, "Test", WeightBlack, 0)

	if got.Size != 24 {
		t.Errorf("Size = %v, want the 24px floor", got.Size)
	}
	if got.Width <= 100 {
		t.Errorf("Width = %v, want reported overflow above the 100px box", got.Width)
	}
}

func TestFitTrackedWidthDrivesTheLoop(t *testing.T) {
	s := newFakeSurface(1000, 1000, 0.5)

	// Plain width at size 100 is 200px and would fit a 210px box, but +20
	// tracking over three gaps pushes it to 260px and forces a shrink.
	got := Fit(s, "abcd", 210, 100, 24, "Test", WeightBlack, 20)

	if got.Size >= 100 {
		t.Errorf("Size = %v, want below 100 because tracking overflows the box", got.Size)
	}
	if want := MeasureTracked(s, "abcd", 20); got.Width != want {
		// The surface ends the loop at the resolved size, so remeasuring
		// must reproduce the reported width.
		t.Errorf("Width = %v, want %v", got.Width, want)
	}
}
