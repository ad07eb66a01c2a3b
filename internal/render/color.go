package render

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseHex converts a "#rgb" or "#rrggbb" string to an opaque color.
// Invalid input yields white, a safe default for rendering.
func ParseHex(s string) color.RGBA {
	hex, ok := normalizeHex(s)
	if !ok {
		return color.RGBA{255, 255, 255, 255}
	}
	r, _ := strconv.ParseUint(hex[0:2], 16, 8)
	g, _ := strconv.ParseUint(hex[2:4], 16, 8)
	b, _ := strconv.ParseUint(hex[4:6], 16, 8)
	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}
}

// Luminance lightens (delta > 0) or darkens (delta < 0) a 3- or 6-digit hex
// color by scaling each channel by 1+delta, clamped to [0, 255], and
// re-encodes it zero-padded. delta is expected in [-1, 1].
func Luminance(hex string, delta float64) string {
	norm, ok := normalizeHex(hex)
	if !ok {
		return hex
	}
	var out strings.Builder
	out.WriteByte('#')
	for i := 0; i < 3; i++ {
		c, _ := strconv.ParseUint(norm[i*2:i*2+2], 16, 8)
		v := math.Round(float64(c) + float64(c)*delta)
		v = math.Min(math.Max(0, v), 255)
		fmt.Fprintf(&out, "%02x", int(v))
	}
	return out.String()
}

// normalizeHex strips the leading '#' and expands 3-digit shorthand.
func normalizeHex(s string) (string, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return "", false
	}
	for i := 0; i < 6; i++ {
		if _, err := strconv.ParseUint(hex[i:i+1], 16, 8); err != nil {
			return "", false
		}
	}
	return strings.ToLower(hex), true
}
