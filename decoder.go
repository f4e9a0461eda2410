package tcellsixel

const (
	sixelMin = '?' // lowest data character, mask 0b000000
	sixelMax = '~' // highest data character, mask 0b111111
)

type decodeState int

const (
	stateData decodeState = iota
	stateColor
	stateRepeat
)

// maximum parameters a color command carries: index;system;a;b;c
const maxColorParams = 5

// sixelImage is the result of a successful decode: a tightly bounded RGBA
// buffer.
type sixelImage struct {
	pix    []byte
	width  int
	height int
}

// decoder runs the sixel body state machine. A decoder is good for exactly
// one stream; the palette and canvas are discarded with it.
type decoder struct {
	canvas  *canvas
	palette palette
	active  int

	x, y       int
	maxX, maxY int

	state  decodeState
	params []int
	num    int
	hasNum bool
	repeat int
}

func newDecoder(maxWidth, maxHeight, maxColors int) *decoder {
	return &decoder{
		canvas:  newCanvas(maxWidth, maxHeight),
		palette: newPalette(maxColors),
		maxX:    -1,
		maxY:    -1,
		params:  make([]int, 0, maxColorParams),
	}
}

// decodeSixel decodes a sixel body (the bytes after 'q') and returns nil if
// the stream never wrote a pixel.
func decodeSixel(body []byte, maxWidth, maxHeight, maxColors int) *sixelImage {
	d := newDecoder(maxWidth, maxHeight, maxColors)
	d.run(body)
	if d.maxX < 0 {
		return nil
	}
	width := d.maxX + 1
	height := d.maxY + 1
	return &sixelImage{
		pix:    d.canvas.extract(width, height),
		width:  width,
		height: height,
	}
}

func (d *decoder) run(body []byte) {
	for i := 0; i < len(body); {
		b := body[i]
		switch d.state {
		case stateColor:
			switch {
			case b >= '0' && b <= '9':
				d.num = d.num*10 + int(b-'0')
				d.hasNum = true
				i++
			case b == ';':
				d.pushParam()
				i++
			default:
				// the terminating byte belongs to the next token
				d.finishColor()
			}
		case stateRepeat:
			switch {
			case b >= '0' && b <= '9':
				d.repeat = d.repeat*10 + int(b-'0')
				i++
			case b >= sixelMin && b <= sixelMax:
				count := d.repeat
				if count < 1 {
					count = 1
				}
				d.draw(b, count)
				d.state = stateData
				i++
			default:
				// no character to repeat, drop the command
				d.state = stateData
			}
		default:
			switch {
			case b == '#':
				d.state = stateColor
				d.params = d.params[:0]
				d.num = 0
				d.hasNum = false
			case b == '!':
				d.state = stateRepeat
				d.repeat = 0
			case b == '$':
				d.x = 0
			case b == '-':
				d.y += 6
				d.x = 0
			case b >= sixelMin && b <= sixelMax:
				d.draw(b, 1)
			}
			// anything else is ignored
			i++
		}
	}
	// an unterminated color command is finalized with whatever parameters
	// arrived; a dangling repeat has no character to draw and is dropped
	if d.state == stateColor {
		d.finishColor()
	}
}

// draw renders one data character count times, advancing the cursor once per
// repetition. Repetitions that would run past the configured maximum width
// are dropped.
func (d *decoder) draw(b byte, count int) {
	if d.x+count > d.canvas.maxWidth {
		count = d.canvas.maxWidth - d.x
		if count < 0 {
			count = 0
		}
	}
	mask := b - sixelMin
	col := d.palette.color(d.active)
	for n := 0; n < count; n++ {
		if mask != 0 && d.canvas.ensure(d.x+1, d.y+6) {
			for bit := 0; bit < 6; bit++ {
				if mask&(1<<bit) == 0 {
					continue
				}
				d.canvas.setPixel(d.x, d.y+bit, col)
				if d.x > d.maxX {
					d.maxX = d.x
				}
				if d.y+bit > d.maxY {
					d.maxY = d.y + bit
				}
			}
		}
		d.x++
	}
}

func (d *decoder) pushParam() {
	if len(d.params) < maxColorParams {
		d.params = append(d.params, d.num)
	}
	d.num = 0
	d.hasNum = false
}

// finishColor applies an accumulated "#..." command. One parameter selects
// the active palette index; five parameters additionally define it, with the
// second parameter choosing the color system (1 = HLS, 2 = RGB percentages).
// Other shapes still select the index but change no entry.
func (d *decoder) finishColor() {
	if d.hasNum || len(d.params) == 0 {
		d.pushParam()
	}
	d.state = stateData

	if len(d.params) == 0 {
		return
	}
	index := d.params[0]
	d.active = d.palette.clampIndex(index)

	if len(d.params) != maxColorParams {
		return
	}
	switch d.params[1] {
	case 1:
		d.palette.setHLS(index, d.params[2], d.params[3], d.params[4])
	case 2:
		d.palette.setRGB(index, d.params[2], d.params[3], d.params[4])
	}
}
