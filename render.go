package tcellsixel

// Draw walks the live placements and blits every visible one onto the
// surface, oldest first. Rectangles are clipped against the window's pixel
// bounds; placements outside the viewport produce no calls.
func (m *Manager) Draw(s Surface) {
	rows := m.grid.VisibleRows()
	cellWidth, cellHeight := m.grid.CellSizeInPixels()
	winWidth, winHeight := m.grid.SizeInPixels()

	for _, p := range m.store.ordered() {
		if p.Row+p.RowSpan(cellHeight) <= 0 {
			continue
		}
		if p.Row >= rows {
			continue
		}

		dstX := p.Col * cellWidth
		dstY := p.Row * cellHeight
		if dstX < 0 || dstY < 0 || dstX >= winWidth || dstY >= winHeight {
			continue
		}

		dstW := p.Width
		dstH := p.Height
		if dstX+dstW > winWidth {
			dstW = winWidth - dstX
		}
		if dstY+dstH > winHeight {
			dstH = winHeight - dstY
		}
		if dstW <= 0 || dstH <= 0 {
			continue
		}

		s.Blit(p.Pix, p.Width, p.Height, p.Stride, dstX, dstY, dstW, dstH)
	}
}
