package tcellsixel

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// sixelColor is a palette entry. Sixel has no alpha channel; pixels are
// fully opaque once written.
type sixelColor struct {
	r, g, b uint8
}

// defaultPalette is the 16-entry VGA-style table every decode starts from.
// Entries above 15 stay zero until the stream defines them.
var defaultPalette = [16]sixelColor{
	{0x00, 0x00, 0x00}, // black
	{0x00, 0x00, 0xaa}, // blue
	{0x00, 0xaa, 0x00}, // green
	{0x00, 0xaa, 0xaa}, // cyan
	{0xaa, 0x00, 0x00}, // red
	{0xaa, 0x00, 0xaa}, // magenta
	{0xaa, 0x55, 0x00}, // brown
	{0xaa, 0xaa, 0xaa}, // white
	{0x55, 0x55, 0x55}, // bright black
	{0x55, 0x55, 0xff}, // bright blue
	{0x55, 0xff, 0x55}, // bright green
	{0x55, 0xff, 0xff}, // bright cyan
	{0xff, 0x55, 0x55}, // bright red
	{0xff, 0x55, 0xff}, // bright magenta
	{0xff, 0xff, 0x55}, // yellow
	{0xff, 0xff, 0xff}, // bright white
}

// palette is the decode-scoped color table. It is created fresh for every
// decode and never survives it.
type palette []sixelColor

func newPalette(maxColors int) palette {
	if maxColors < 1 {
		maxColors = 1
	}
	p := make(palette, maxColors)
	copy(p, defaultPalette[:])
	return p
}

// clampIndex maps out-of-range palette indices to the default entry.
func (p palette) clampIndex(index int) int {
	if index < 0 || index >= len(p) {
		return 0
	}
	return index
}

func (p palette) color(index int) sixelColor {
	return p[p.clampIndex(index)]
}

// setRGB defines an entry from percentage channels (0-100), as sent by the
// "#Pc;2;Pr;Pg;Pb" color command.
func (p palette) setRGB(index, r, g, b int) {
	p[p.clampIndex(index)] = sixelColor{
		r: percentToChannel(r),
		g: percentToChannel(g),
		b: percentToChannel(b),
	}
}

// setHLS defines an entry from the "#Pc;1;Ph;Pl;Ps" color command. Hue is
// 0-360 degrees, lightness and saturation 0-100.
func (p palette) setHLS(index, h, l, s int) {
	h = clamp(h, 0, 360)
	l = clamp(l, 0, 100)
	s = clamp(s, 0, 100)
	c := colorful.Hsl(float64(h), float64(s)/100, float64(l)/100)
	cr, cg, cb := c.Clamped().RGB255()
	p[p.clampIndex(index)] = sixelColor{r: cr, g: cg, b: cb}
}

func percentToChannel(v int) uint8 {
	return uint8(clamp(v, 0, 100) * 255 / 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
