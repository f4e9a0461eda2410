package tcellsixel

import (
	"github.com/gdamore/tcell/v2"
)

// DrawCells paints the visible placements onto a tcell screen as character
// cells, for screens that have no pixel surface to blit to. Each cell shows
// two vertically stacked pixels through an upper-half-block rune with
// distinct foreground and background colors. Cells whose pixels were never
// drawn are left untouched.
func (m *Manager) DrawCells(s tcell.Screen) {
	screenWidth, screenHeight := s.Size()
	rows := m.grid.VisibleRows()
	if rows > screenHeight {
		rows = screenHeight
	}
	cellWidth, cellHeight := m.grid.CellSizeInPixels()

	for _, p := range m.store.ordered() {
		rowSpan := p.RowSpan(cellHeight)
		colSpan := p.ColSpan(cellWidth)
		if p.Row+rowSpan <= 0 || p.Row >= rows {
			continue
		}

		img := scaleImage(p.Image(), colSpan, rowSpan*2)
		for cy := 0; cy < rowSpan; cy++ {
			y := p.Row + cy
			if y < 0 || y >= rows {
				continue
			}
			for cx := 0; cx < colSpan; cx++ {
				x := p.Col + cx
				if x < 0 || x >= screenWidth {
					continue
				}
				top := img.RGBAAt(cx, cy*2)
				bottom := img.RGBAAt(cx, cy*2+1)
				if top.A == 0 && bottom.A == 0 {
					continue
				}
				style := tcell.StyleDefault.
					Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
					Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
				s.SetContent(x, y, '▀', nil, style)
			}
		}
	}
}
