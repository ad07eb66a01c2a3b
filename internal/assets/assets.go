// Package assets loads the external collaborator inputs: the background
// photo, the logo and the font files. Load failures are recoverable:
// callers substitute fallbacks and keep rendering.
package assets

import (
	"fmt"
	"image"
	"os"

	// Covers and logos arrive as PNG or JPEG.
	_ "image/jpeg"
	_ "image/png"

	"github.com/quartopress/coverforge/internal/render"
)

// LoadImage decodes a raster image from path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// RegisterFontFile reads a TTF/OTF file and binds it to family/weight in
// lib. When it fails the library serves its embedded fallback for that
// variant, so text always renders.
func RegisterFontFile(lib *render.FontLibrary, family string, weight render.Weight, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read font %s: %w", path, err)
	}
	return lib.Register(family, weight, data)
}
