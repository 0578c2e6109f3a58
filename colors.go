package clockicon

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Brand colors of the extension; the icon background is their midpoint.
const (
	BrandStart = "#667eea"
	BrandEnd   = "#764ba2"
)

var (
	Transparent = color.RGBA{0x00, 0x00, 0x00, 0x00}
	White       = color.RGBA{0xff, 0xff, 0xff, 0xff}

	// Background is the flat color standing in for the brand gradient, RGBA (110,100,198,255).
	Background = Midpoint(MustHex(BrandStart), MustHex(BrandEnd))
)

// Hex parses a CSS hexadecimal color such as #667eea or #fff into an opaque color.
func Hex(s string) (color.RGBA, error) {
	if 0 < len(s) && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// MustHex is like Hex but panics on malformed input.
func MustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Midpoint returns the per-channel average of a and b, rounded down.
func Midpoint(a, b color.RGBA) color.RGBA {
	return color.RGBA{
		uint8((uint16(a.R) + uint16(b.R)) / 2),
		uint8((uint16(a.G) + uint16(b.G)) / 2),
		uint8((uint16(a.B) + uint16(b.B)) / 2),
		uint8((uint16(a.A) + uint16(b.A)) / 2),
	}
}
