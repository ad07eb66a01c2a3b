package app

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/quartopress/coverforge/internal/config"
	"github.com/quartopress/coverforge/internal/state"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	// No asset paths configured: the model falls back to the default native
	// resolution and text renders with the embedded fonts.
	a := New(config.Default(), nil)
	a.LoadAssets()
	return a
}

func TestExportRestoresModelScale(t *testing.T) {
	a := newTestApp(t)
	a.Model.SetScaleFor(400)
	before := a.Model.Scale()

	data, err := a.ExportPNG()
	if err != nil {
		t.Fatalf("ExportPNG: %v", err)
	}
	if got := a.Model.Scale(); got != before {
		t.Errorf("scale after export = %v, want %v", got, before)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode export: %v", err)
	}
	native := a.Model.Native()
	if b := img.Bounds(); b.Dx() != native.X || b.Dy() != native.Y {
		t.Errorf("export size = %dx%d, want %dx%d", b.Dx(), b.Dy(), native.X, native.Y)
	}
}

func TestRenderPreviewDefaultWidth(t *testing.T) {
	a := newTestApp(t)

	data, err := a.RenderPreviewPNG(0)
	if err != nil {
		t.Fatalf("RenderPreviewPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	// 480 wide at the fallback 1600x2560 aspect.
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 768 {
		t.Errorf("preview size = %dx%d, want 480x768", b.Dx(), b.Dy())
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	a := newTestApp(t)
	a.SetFields(state.Fields{
		Tint:     "#2b6e9e",
		Title1:   "THE LONG",
		Title2:   "WINTER",
		Subtitle: "a field guide",
		Author:   "M. HALVORSEN",
	})

	first, err := a.RenderPreviewPNG(240)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := a.RenderPreviewPNG(240)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("identical fields rendered different bytes")
	}
}

func TestRenderAtRejectsInvalidDimensions(t *testing.T) {
	a := newTestApp(t)
	before := a.Model.Scale()

	if _, err := a.RenderAt(0, 100); err == nil {
		t.Error("RenderAt(0, 100) succeeded")
	}
	if got := a.Model.Scale(); got != before {
		t.Errorf("scale after failed render = %v, want %v", got, before)
	}
}
