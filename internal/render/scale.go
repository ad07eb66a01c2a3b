package render

import (
	"image"
	"math"
	"sync"
)

// Fallback native resolution used when the background image fails to load,
// so layout never blocks on a missing asset.
const (
	FallbackNativeWidth  = 1600
	FallbackNativeHeight = 2560
)

// Model is the scale model: a fixed native (design) resolution and the
// scale factor of the currently active render target. Layout constants are
// authored in native units and multiplied by the active scale before use.
//
// Native dimensions are set once per loaded background image; the scale
// varies per render target.
type Model struct {
	mu      sync.Mutex
	nativeW int
	nativeH int
	scale   float64
}

func NewModel() *Model { return &Model{} }

// Initialized reports whether a native resolution has been established.
func (m *Model) Initialized() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.nativeW > 0 && m.nativeH > 0
}

// SetNative transitions the model to initialized. Non-positive dimensions
// select the fallback resolution.
func (m *Model) SetNative(w, h int) {
	if w <= 0 || h <= 0 {
		w, h = FallbackNativeWidth, FallbackNativeHeight
	}
	m.mu.Lock()
	m.nativeW, m.nativeH = w, h
	if m.scale == 0 {
		m.scale = 1
	}
	m.mu.Unlock()
}

func (m *Model) Native() image.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return image.Pt(m.nativeW, m.nativeH)
}

func (m *Model) Scale() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scale
}

// SetScaleFor derives the scale from a target width: targetW / nativeW.
func (m *Model) SetScaleFor(targetW int) {
	m.mu.Lock()
	if m.nativeW > 0 && targetW > 0 {
		m.scale = float64(targetW) / float64(m.nativeW)
	}
	m.mu.Unlock()
}

// FitViewport computes display target dimensions that fit the native aspect
// ratio into an availW×availH viewport, after reserving panelW horizontal
// pixels for controls and margin pixels of breathing room on both axes. The
// scale is the minimum of the width- and height-constrained factors;
// resulting dimensions are rounded. The model's scale is updated to match.
func (m *Model) FitViewport(availW, availH, panelW, margin int) (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.nativeW <= 0 || m.nativeH <= 0 {
		return 0, 0
	}
	usableW := availW - panelW - margin
	usableH := availH - margin
	if usableW <= 0 || usableH <= 0 {
		return 0, 0
	}
	sw := float64(usableW) / float64(m.nativeW)
	sh := float64(usableH) / float64(m.nativeH)
	s := math.Min(sw, sh)
	if s <= 0 {
		return 0, 0
	}
	m.scale = s
	return int(math.Round(float64(m.nativeW) * s)), int(math.Round(float64(m.nativeH) * s))
}

// WithScale runs fn with the scale transiently overridden, restoring the
// prior value whether or not fn fails. Native-resolution exports run under
// WithScale(1.0, ...) so a mid-export failure can never leave the live
// display scale corrupted.
func (m *Model) WithScale(s float64, fn func() error) error {
	m.mu.Lock()
	prev := m.scale
	m.scale = s
	m.mu.Unlock()

	defer func() {
		m.mu.Lock()
		m.scale = prev
		m.mu.Unlock()
	}()

	return fn()
}
