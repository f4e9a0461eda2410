package tcellsixel

type Option func(m *Manager)

// WithMaxImageSize caps decoded image dimensions in pixels. Content beyond
// the cap is truncated, not rejected.
func WithMaxImageSize(width, height int) Option {
	return func(m *Manager) {
		m.maxWidth = width
		m.maxHeight = height
	}
}

// WithMaxColors sets the palette size available to a single decode.
func WithMaxColors(n int) Option {
	return func(m *Manager) {
		m.maxColors = n
	}
}

// WithMaxMemory caps the aggregate pixel memory held by live placements, in
// megabytes.
func WithMaxMemory(mb int) Option {
	return func(m *Manager) {
		m.maxBytes = mb << 20
	}
}

// WithMaxPlacements caps how many placements stay resident at once.
func WithMaxPlacements(n int) Option {
	return func(m *Manager) {
		m.maxPlacements = n
	}
}
