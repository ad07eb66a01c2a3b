package render

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// fontDPI keeps one font pixel equal to one canvas pixel.
const fontDPI = 72

// parsedFont wraps whichever parser accepted the font data. TTF files go
// through freetype's truetype package; OTF files that truetype rejects fall
// back to x/image opentype.
type parsedFont struct {
	tt *truetype.Font
	ot *opentype.Font
}

func parseFont(data []byte) (parsedFont, error) {
	if tt, err := truetype.Parse(data); err == nil {
		return parsedFont{tt: tt}, nil
	}
	ot, err := opentype.Parse(data)
	if err != nil {
		return parsedFont{}, fmt.Errorf("parse font: %w", err)
	}
	return parsedFont{ot: ot}, nil
}

func (p parsedFont) face(size float64) (font.Face, error) {
	if p.tt != nil {
		return truetype.NewFace(p.tt, &truetype.Options{
			Size:    size,
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		}), nil
	}
	return opentype.NewFace(p.ot, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
}

type variantKey struct {
	family string
	weight Weight
}

// FontLibrary maps (family, weight) pairs to parsed fonts and caches the
// faces it mints per FontSpec. Unknown variants resolve to the embedded Go
// fonts so rendering never blocks on a missing font file: black weights get
// Go Bold, everything else Go Regular.
type FontLibrary struct {
	mu       sync.Mutex
	variants map[variantKey]parsedFont
	faces    map[string]font.Face

	fallbackBlack  parsedFont
	fallbackNormal parsedFont
}

func NewFontLibrary() *FontLibrary {
	// The embedded Go fonts are known-good TTFs; a parse failure here is a
	// programming error.
	bold, err := parseFont(gobold.TTF)
	if err != nil {
		panic(err)
	}
	regular, err := parseFont(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return &FontLibrary{
		variants:       make(map[variantKey]parsedFont),
		faces:          make(map[string]font.Face),
		fallbackBlack:  bold,
		fallbackNormal: regular,
	}
}

// Register parses data and binds it to the family/weight pair.
func (lib *FontLibrary) Register(family string, weight Weight, data []byte) error {
	parsed, err := parseFont(data)
	if err != nil {
		return fmt.Errorf("register %s %s: %w", family, weight, err)
	}
	lib.mu.Lock()
	lib.variants[variantKey{family, weight}] = parsed
	lib.mu.Unlock()
	return nil
}

// Face resolves spec to a cached font.Face, falling back to the embedded
// fonts for unregistered variants.
func (lib *FontLibrary) Face(spec FontSpec) (font.Face, error) {
	key := spec.String()

	lib.mu.Lock()
	defer lib.mu.Unlock()

	if face, ok := lib.faces[key]; ok {
		return face, nil
	}

	parsed, ok := lib.variants[variantKey{spec.Family, spec.Weight}]
	if !ok {
		if spec.Weight == WeightBlack {
			parsed = lib.fallbackBlack
		} else {
			parsed = lib.fallbackNormal
		}
	}

	face, err := parsed.face(spec.Size)
	if err != nil {
		return nil, fmt.Errorf("face %s: %w", key, err)
	}
	lib.faces[key] = face
	return face, nil
}
