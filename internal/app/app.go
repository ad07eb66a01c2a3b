// Package app wires configuration, assets, the shared state store and the
// scale model together and owns every render pass.
package app

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/quartopress/coverforge/internal/assets"
	"github.com/quartopress/coverforge/internal/config"
	"github.com/quartopress/coverforge/internal/render"
	"github.com/quartopress/coverforge/internal/state"
)

type App struct {
	Cfg   config.Config
	Store *state.Store
	Model *render.Model
	Fonts *render.FontLibrary
	Log   *log.Logger

	background image.Image
	logo       image.Image

	// renderMu serializes compose passes. Field mutations go through the
	// store and are snapshotted per pass, so a pass never sees a torn
	// record; the mutex keeps concurrent HTTP preview/export requests from
	// sharing a surface.
	renderMu sync.Mutex
}

func New(cfg config.Config, logger *log.Logger) *App {
	if logger == nil {
		logger = log.Default()
	}
	return &App{
		Cfg:   cfg,
		Store: state.NewStore(),
		Model: render.NewModel(),
		Fonts: render.NewFontLibrary(),
		Log:   logger,
	}
}

// LoadAssets loads the background photo, logo and fonts from the configured
// paths. Every failure is recovered locally: the model falls back to the
// default native resolution, the logo step is skipped, and missing fonts
// resolve to the embedded fallbacks. Each completion counts as an
// asset-ready event and triggers a fresh render via the store revision.
func (a *App) LoadAssets() {
	if path := a.Cfg.Assets.Background; path != "" {
		img, err := assets.LoadImage(path)
		if err != nil {
			a.Log.Warn("background load failed, using fallback resolution", "err", err)
		} else {
			a.background = img
			b := img.Bounds()
			a.Model.SetNative(b.Dx(), b.Dy())
		}
	}
	if !a.Model.Initialized() {
		a.Model.SetNative(render.FallbackNativeWidth, render.FallbackNativeHeight)
	}
	a.Store.Touch()

	if path := a.Cfg.Assets.Logo; path != "" {
		img, err := assets.LoadImage(path)
		if err != nil {
			a.Log.Warn("logo load failed, skipping logo", "err", err)
		} else {
			a.logo = img
		}
		a.Store.Touch()
	}

	fonts := a.Cfg.Fonts
	if fonts.TitleFile != "" {
		if err := assets.RegisterFontFile(a.Fonts, fonts.TitleFamily, render.WeightBlack, fonts.TitleFile); err != nil {
			a.Log.Warn("title font load failed, using embedded fallback", "err", err)
		}
	}
	if fonts.BodyFile != "" {
		if err := assets.RegisterFontFile(a.Fonts, fonts.BodyFamily, render.WeightNormal, fonts.BodyFile); err != nil {
			a.Log.Warn("body font load failed, using embedded fallback", "err", err)
		}
	}
	a.Store.Touch()
}

// Fields returns the current field record.
func (a *App) Fields() state.Fields { return a.Store.Snapshot().Fields }

// SetFields replaces the field record and bumps the revision.
func (a *App) SetFields(fields state.Fields) { a.Store.SetFields(fields) }

// Revision exposes the store revision for change-driven redraw loops.
func (a *App) Revision() uint64 { return a.Store.Snapshot().Revision }

func (a *App) scene() render.Scene {
	return render.Scene{
		Background:  a.background,
		Logo:        a.logo,
		TitleFamily: a.Cfg.Fonts.TitleFamily,
		BodyFamily:  a.Cfg.Fonts.BodyFamily,
		Native:      a.Model.Native(),
		Scale:       a.Model.Scale(),
		Log:         a.Log,
	}
}

// RenderAt composes the current cover into a fresh canvas of the given
// dimensions, transiently overriding the model scale to width/nativeWidth
// and restoring it afterwards.
func (a *App) RenderAt(width, height int) (*image.RGBA, error) {
	native := a.Model.Native()
	if native.X <= 0 {
		return nil, fmt.Errorf("native resolution not initialized")
	}

	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	var canvas *render.RasterSurface
	err := a.Model.WithScale(float64(width)/float64(native.X), func() error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("invalid target dimensions %dx%d", width, height)
		}
		canvas = render.NewRasterSurface(width, height, a.Fonts)
		render.Compose(canvas, a.scene(), a.Store.Snapshot().Fields)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return canvas.Image(), nil
}

// RenderPreviewPNG renders at a scaled-down display width and encodes PNG.
func (a *App) RenderPreviewPNG(width int) ([]byte, error) {
	native := a.Model.Native()
	if width <= 0 {
		width = 480
	}
	height := int(math.Round(float64(native.Y) * float64(width) / float64(native.X)))
	img, err := a.RenderAt(width, height)
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}

// ExportPNG composes a transient full native-resolution pass (scale forced
// to 1.0, restored afterwards regardless of outcome) and encodes PNG.
func (a *App) ExportPNG() ([]byte, error) {
	native := a.Model.Native()
	img, err := a.RenderAt(native.X, native.Y)
	if err != nil {
		return nil, err
	}
	return encodePNG(img)
}

// RenderDisplay composes at the live display dimensions using the model's
// current (viewport-fitted) scale.
func (a *App) RenderDisplay(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid display dimensions %dx%d", width, height)
	}
	a.renderMu.Lock()
	defer a.renderMu.Unlock()

	canvas := render.NewRasterSurface(width, height, a.Fonts)
	render.Compose(canvas, a.scene(), a.Store.Snapshot().Fields)
	return canvas.Image(), nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
