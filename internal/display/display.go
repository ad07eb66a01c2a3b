// Package display shows the live cover on a Linux framebuffer. The cover is
// composed at a viewport-fitted scale, a QR code pointing at the editor URL
// is overlaid in the reserved panel area, and the canvas is blitted whenever
// the state revision changes.
package display

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/charmbracelet/log"
	fb "github.com/gonutz/framebuffer"

	"github.com/quartopress/coverforge/internal/render"
	"github.com/quartopress/coverforge/internal/system"
)

// Display drives one framebuffer device. Render and Revision are function
// fields so the package depends on the app only through behavior.
type Display struct {
	Device     string
	PanelWidth int
	Margin     int

	Model     *render.Model
	Render    func(width, height int) (*image.RGBA, error)
	Revision  func() uint64
	EditorURL string
	Log       *log.Logger

	dev     *fb.Device
	coverW  int
	coverH  int
	qrImage image.Image
}

// Start opens the framebuffer, switches the console to graphics mode and
// computes the viewport-fitted cover dimensions.
func (d *Display) Start() error {
	device := d.Device
	if device == "" {
		device = "/dev/fb0"
	}
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("open %s: %w", device, err)
	}
	d.dev = dev

	if err := system.SetGraphicsMode(); err != nil {
		d.Log.Warn("graphics mode failed", "err", err)
	}
	_ = system.HideCursor()

	bounds := dev.Bounds()
	d.coverW, d.coverH = d.Model.FitViewport(bounds.Dx(), bounds.Dy(), d.PanelWidth, d.Margin)
	if d.coverW <= 0 || d.coverH <= 0 {
		d.Stop()
		return fmt.Errorf("framebuffer %dx%d too small for the cover", bounds.Dx(), bounds.Dy())
	}
	d.Log.Info("display ready", "fb", fmt.Sprintf("%dx%d", bounds.Dx(), bounds.Dy()),
		"cover", fmt.Sprintf("%dx%d", d.coverW, d.coverH), "scale", d.Model.Scale())

	if d.EditorURL != "" {
		qr, err := editorQR(d.EditorURL, qrSizeFor(d.PanelWidth, d.Margin))
		if err != nil {
			d.Log.Warn("editor QR generation failed", "err", err)
		} else {
			d.qrImage = qr
		}
	}
	return nil
}

// Stop restores the console and closes the device.
func (d *Display) Stop() {
	_ = system.ShowCursor()
	if err := system.RestoreTextMode(); err != nil {
		d.Log.Warn("restore text mode failed", "err", err)
	}
	if d.dev != nil {
		d.dev.Close()
		d.dev = nil
	}
}

// RunLoop redraws whenever the state revision changes, polling at ~10 Hz,
// until ctx is done.
func (d *Display) RunLoop(ctx context.Context) {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var last uint64
	first := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rev := d.Revision()
			if !first && rev == last {
				continue
			}
			first = false
			last = rev
			if err := d.redraw(); err != nil {
				d.Log.Error("redraw failed", "err", err)
			}
		}
	}
}

func (d *Display) redraw() error {
	canvas, err := d.Render(d.coverW, d.coverH)
	if err != nil {
		return err
	}

	bounds := d.dev.Bounds()
	draw.Draw(d.dev, bounds, &image.Uniform{C: color.Black}, image.Point{}, draw.Src)

	// Cover sits left of the reserved panel, vertically centered.
	offset := image.Pt(
		bounds.Min.X+d.Margin/2,
		bounds.Min.Y+(bounds.Dy()-d.coverH)/2,
	)
	draw.Draw(d.dev, image.Rectangle{Min: offset, Max: offset.Add(image.Pt(d.coverW, d.coverH))},
		canvas, canvas.Bounds().Min, draw.Src)

	if d.qrImage != nil {
		qb := d.qrImage.Bounds()
		qx := bounds.Max.X - d.PanelWidth + (d.PanelWidth-qb.Dx())/2
		qy := bounds.Min.Y + d.Margin
		draw.Draw(d.dev, image.Rect(qx, qy, qx+qb.Dx(), qy+qb.Dy()), d.qrImage, qb.Min, draw.Src)
	}
	return nil
}

func qrSizeFor(panelWidth, margin int) int {
	size := panelWidth - 2*margin
	if size < 128 {
		size = 128
	}
	return size
}
