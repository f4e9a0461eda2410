package tcellsixel

import (
	"github.com/gdamore/tcell/v2"
)

// Grid answers the viewport and cursor queries the placement lifecycle
// depends on. It is the terminal-side collaborator; the method set follows
// the usual window manipulator shape.
type Grid interface {
	// CursorPosition returns the current cursor row and column.
	CursorPosition() (row, col int)
	// VisibleRows returns the number of rows in the viewport.
	VisibleRows() int
	// CellSizeInPixels returns the pixel dimensions of one cell. Zero
	// values mean the size is unknown.
	CellSizeInPixels() (w, h int)
	// SizeInPixels returns the window's pixel dimensions.
	SizeInPixels() (w, h int)
}

// Surface is the pixel blit primitive placements are painted through at
// render time. dstW and dstH may be smaller than the image when the
// placement is clipped by the window edge.
type Surface interface {
	Blit(pix []byte, w, h, stride, dstX, dstY, dstW, dstH int)
}

// DCSHandler consumes device control strings. A handler returns false when
// the payload is not its protocol, so the dispatcher can offer it to the
// next handler.
type DCSHandler interface {
	HandleDCS(body []byte) bool
}

const (
	defaultMaxWidth      = 4096
	defaultMaxHeight     = 4096
	defaultMaxColors     = 1024
	defaultMaxMemoryMB   = 128
	defaultMaxPlacements = 256
)

// Manager owns the placement store: it decodes sixel DCS payloads into
// placements, keeps them within the configured resource budget, shifts them
// on scroll and walks them at render time. All entry points run on the
// caller's event loop; the Manager does no locking of its own.
type Manager struct {
	grid  Grid
	store *store

	maxWidth      int
	maxHeight     int
	maxColors     int
	maxBytes      int
	maxPlacements int

	eventHandler func(tcell.Event)
}

func NewManager(grid Grid, opts ...Option) *Manager {
	m := &Manager{
		grid:          grid,
		store:         newStore(),
		maxWidth:      defaultMaxWidth,
		maxHeight:     defaultMaxHeight,
		maxColors:     defaultMaxColors,
		maxBytes:      defaultMaxMemoryMB << 20,
		maxPlacements: defaultMaxPlacements,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Attach sets the handler that receives an EventSixel for every new
// placement.
func (m *Manager) Attach(fn func(tcell.Event)) {
	m.eventHandler = fn
}

// HandleDCS decodes a sixel DCS payload into a placement anchored at the
// current cursor position. It returns false when the payload is not a sixel
// stream; an empty or pixel-less stream is handled but creates nothing.
func (m *Manager) HandleDCS(body []byte) bool {
	start, err := sixelBodyStart(body)
	if err != nil {
		return false
	}

	img := decodeSixel(body[start:], m.maxWidth, m.maxHeight, m.maxColors)
	if img == nil {
		return true
	}

	row, col := m.grid.CursorPosition()
	p := &Placement{
		Row:    row,
		Col:    col,
		Width:  img.width,
		Height: img.height,
		Stride: img.width * 4,
		Pix:    img.pix,
	}
	m.store.insert(p)
	if n := m.store.enforce(m.maxPlacements, m.maxBytes); n > 0 {
		sxlog.Printf("evicted %d placement(s), %d live, %d bytes", n, m.store.count(), m.store.totalBytes)
	}
	m.postEvent(newEventSixel(p))
	return true
}

// LineScrolledOut shifts every placement up one row because a line left the
// scrollback window, and drops placements whose bottom edge is now above
// the viewport.
func (m *Manager) LineScrolledOut() {
	_, cellHeight := m.grid.CellSizeInPixels()
	for _, p := range m.store.ordered() {
		p.Row--
		if p.Row+p.RowSpan(cellHeight) < 0 {
			m.store.remove(p.ID)
		}
	}
}

// Placements returns the live placements ordered oldest first.
func (m *Manager) Placements() []*Placement {
	return m.store.ordered()
}

// MemoryUsed returns the aggregate pixel buffer bytes currently held.
func (m *Manager) MemoryUsed() int {
	return m.store.totalBytes
}

func (m *Manager) postEvent(ev tcell.Event) {
	if m.eventHandler == nil {
		return
	}
	m.eventHandler(ev)
}
