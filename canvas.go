package tcellsixel

// canvas is the growable RGBA buffer the decoder draws into. It grows by
// doubling each axis independently and never exceeds the configured maximum
// dimensions. Grown regions are zero, i.e. fully transparent.
type canvas struct {
	pix       []byte
	width     int
	height    int
	maxWidth  int
	maxHeight int
}

// initial edge length of a fresh canvas before the first doubling
const canvasInitialSize = 64

func newCanvas(maxWidth, maxHeight int) *canvas {
	return &canvas{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
	}
}

// ensure grows the canvas until it covers width x height pixels. It reports
// false if the request exceeds the configured maxima; the caller must then
// drop the write. Growth never shrinks and existing rows are preserved.
func (c *canvas) ensure(width, height int) bool {
	if width > c.maxWidth || height > c.maxHeight {
		return false
	}
	if width <= c.width && height <= c.height {
		return true
	}

	newWidth := c.width
	newHeight := c.height
	if newWidth == 0 {
		newWidth = canvasInitialSize
	}
	if newHeight == 0 {
		newHeight = canvasInitialSize
	}
	for newWidth < width {
		newWidth *= 2
	}
	for newHeight < height {
		newHeight *= 2
	}
	if newWidth > c.maxWidth {
		newWidth = c.maxWidth
	}
	if newHeight > c.maxHeight {
		newHeight = c.maxHeight
	}

	pix := make([]byte, newWidth*newHeight*4)
	for y := 0; y < c.height; y++ {
		copy(pix[y*newWidth*4:], c.pix[y*c.width*4:(y+1)*c.width*4])
	}
	c.pix = pix
	c.width = newWidth
	c.height = newHeight
	return true
}

// setPixel writes an opaque pixel. The caller must have ensured the canvas
// covers (x, y).
func (c *canvas) setPixel(x, y int, col sixelColor) {
	offset := (y*c.width + x) * 4
	c.pix[offset] = col.r
	c.pix[offset+1] = col.g
	c.pix[offset+2] = col.b
	c.pix[offset+3] = 0xff
}

// extract copies out the top-left width x height region with a tight stride.
// The decoder uses it to trim the power-of-two canvas down to the bounding
// box of drawn content.
func (c *canvas) extract(width, height int) []byte {
	pix := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		copy(pix[y*width*4:(y+1)*width*4], c.pix[y*c.width*4:])
	}
	return pix
}
