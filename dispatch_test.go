package tcellsixel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler accepts or refuses every payload it sees.
type recordingHandler struct {
	accept   bool
	payloads []string
}

func (h *recordingHandler) HandleDCS(body []byte) bool {
	h.payloads = append(h.payloads, string(body))
	return h.accept
}

func TestDispatcherPassesPlainOutputThrough(t *testing.T) {
	d := NewDispatcher()
	out := d.Filter([]byte("hello \x1b[31mworld\x1b[0m"))
	assert.Equal(t, "hello \x1b[31mworld\x1b[0m", string(out))
}

func TestDispatcherExtractsDCSPayload(t *testing.T) {
	h := &recordingHandler{accept: true}
	d := NewDispatcher(h)

	out := d.Filter([]byte("ab\x1bP0;1;0q~~\x1b\\cd"))
	assert.Equal(t, "abcd", string(out))
	require.Len(t, h.payloads, 1)
	assert.Equal(t, "0;1;0q~~", h.payloads[0])
}

func TestDispatcherHandlesSequencesSplitAcrossWrites(t *testing.T) {
	h := &recordingHandler{accept: true}
	d := NewDispatcher(h)

	var out []byte
	for _, b := range []byte("x\x1bPq~\x1b\\y") {
		out = append(out, d.Filter([]byte{b})...)
	}
	assert.Equal(t, "xy", string(out))
	require.Len(t, h.payloads, 1)
	assert.Equal(t, "q~", h.payloads[0])
}

func TestDispatcherOffersPayloadInRegistrationOrder(t *testing.T) {
	refusing := &recordingHandler{accept: false}
	accepting := &recordingHandler{accept: true}
	d := NewDispatcher()
	d.Register(refusing)
	d.Register(accepting)

	d.Filter([]byte("\x1bPq~\x1b\\"))
	assert.Equal(t, []string{"q~"}, refusing.payloads)
	assert.Equal(t, []string{"q~"}, accepting.payloads)
}

func TestDispatcherAbortsOnCancel(t *testing.T) {
	h := &recordingHandler{accept: true}
	d := NewDispatcher(h)

	out := d.Filter([]byte("\x1bPq~~\x18rest"))
	assert.Equal(t, "rest", string(out))
	assert.Empty(t, h.payloads)
}

func TestDispatcherKeepsEmbeddedEscapes(t *testing.T) {
	h := &recordingHandler{accept: true}
	d := NewDispatcher(h)

	d.Filter([]byte("\x1bPq\x1bA\x1b\\"))
	require.Len(t, h.payloads, 1)
	assert.Equal(t, "q\x1bA", h.payloads[0])
}

func TestDispatcherFeedsManager(t *testing.T) {
	m := NewManager(gridForTesting())
	d := NewDispatcher(m)

	out := d.Filter([]byte("before\x1bP0;1;0q#0;2;100;0;0~~\x1b\\after"))
	assert.Equal(t, "beforeafter", string(out))
	placements := m.Placements()
	require.Len(t, placements, 1)
	assert.Equal(t, 2, placements[0].Width)
	assert.Equal(t, 6, placements[0].Height)
}
