package tcellsixel

// Assumed cell dimensions in pixels when the grid cannot report them.
const (
	defaultCellWidth  = 8
	defaultCellHeight = 16
)

// Placement is one decoded sixel image anchored to a terminal position.
// Everything but Row is fixed at creation; Row moves as the terminal
// scrolls and may go negative once the anchor leaves the scrollback window.
type Placement struct {
	ID     uint64
	Row    int
	Col    int
	Width  int
	Height int
	Stride int
	Pix    []byte
}

// Size returns the pixel buffer size in bytes. The resource governor
// accounts placements by this value.
func (p *Placement) Size() int {
	return p.Width * p.Height * 4
}

// RowSpan returns how many terminal rows the placement covers for the given
// cell height in pixels.
func (p *Placement) RowSpan(cellHeight int) int {
	if cellHeight <= 0 {
		cellHeight = defaultCellHeight
	}
	return (p.Height + cellHeight - 1) / cellHeight
}

// ColSpan returns how many terminal columns the placement covers for the
// given cell width in pixels.
func (p *Placement) ColSpan(cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = defaultCellWidth
	}
	return (p.Width + cellWidth - 1) / cellWidth
}
