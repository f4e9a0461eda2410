package tcellsixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteDefaults(t *testing.T) {
	p := newPalette(1024)
	assert.Len(t, p, 1024)
	assert.Equal(t, sixelColor{0, 0, 0}, p.color(0))
	assert.Equal(t, sixelColor{0xaa, 0, 0}, p.color(4))
	assert.Equal(t, sixelColor{0xff, 0xff, 0xff}, p.color(15))
	// entries above the seeded table stay zero until defined
	assert.Equal(t, sixelColor{}, p.color(16))
	assert.Equal(t, sixelColor{}, p.color(1023))
}

func TestPaletteSmallerThanSeedTable(t *testing.T) {
	p := newPalette(4)
	assert.Len(t, p, 4)
	assert.Equal(t, sixelColor{0, 0xaa, 0xaa}, p.color(3))
}

func TestPaletteIndexClamping(t *testing.T) {
	p := newPalette(16)
	// out of range reads and writes land on the default entry
	assert.Equal(t, p.color(0), p.color(-1))
	assert.Equal(t, p.color(0), p.color(99))
	p.setRGB(99, 100, 100, 100)
	assert.Equal(t, sixelColor{0xff, 0xff, 0xff}, p.color(0))
}

func TestPaletteSetRGB(t *testing.T) {
	tests := []struct {
		name     string
		r, g, b  int
		expected sixelColor
	}{
		{name: "red", r: 100, expected: sixelColor{r: 0xff}},
		{name: "half gray", r: 50, g: 50, b: 50, expected: sixelColor{0x7f, 0x7f, 0x7f}},
		{name: "clamped above", r: 150, g: 200, b: 1000, expected: sixelColor{0xff, 0xff, 0xff}},
		{name: "clamped below", r: -5, expected: sixelColor{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := newPalette(16)
			p.setRGB(1, test.r, test.g, test.b)
			assert.Equal(t, test.expected, p.color(1))
		})
	}
}

func TestPaletteSetHLS(t *testing.T) {
	tests := []struct {
		name     string
		h, l, s  int
		expected sixelColor
	}{
		{name: "red", h: 0, l: 50, s: 100, expected: sixelColor{r: 0xff}},
		{name: "green", h: 120, l: 50, s: 100, expected: sixelColor{g: 0xff}},
		{name: "blue", h: 240, l: 50, s: 100, expected: sixelColor{b: 0xff}},
		{name: "white", h: 0, l: 100, s: 0, expected: sixelColor{0xff, 0xff, 0xff}},
		{name: "black", h: 0, l: 0, s: 100, expected: sixelColor{}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := newPalette(16)
			p.setHLS(1, test.h, test.l, test.s)
			got := p.color(1)
			assert.InDelta(t, test.expected.r, got.r, 1)
			assert.InDelta(t, test.expected.g, got.g, 1)
			assert.InDelta(t, test.expected.b, got.b, 1)
		})
	}
}
