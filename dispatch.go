package tcellsixel

// Dispatcher pulls device control strings out of a terminal output stream
// and offers each completed payload to its handlers in registration order.
// Everything outside a DCS passes through untouched, so the dispatcher can
// sit between a pty and whatever consumes the stream.
type Dispatcher struct {
	handlers []DCSHandler
	state    dispatchState
	body     []byte
}

type dispatchState int

const (
	statePass dispatchState = iota
	stateEsc     // saw ESC outside a DCS
	stateBody    // inside a DCS payload
	stateBodyEsc // saw ESC inside a DCS payload
)

const (
	esc = 0x1b
	st  = 0x5c // string terminator, follows ESC
	can = 0x18
	sub = 0x1a
)

func NewDispatcher(handlers ...DCSHandler) *Dispatcher {
	return &Dispatcher{handlers: handlers}
}

// Register appends a handler. Earlier handlers get first refusal of each
// payload.
func (d *Dispatcher) Register(h DCSHandler) {
	d.handlers = append(d.handlers, h)
}

// Filter consumes a chunk of terminal output. Complete DCS payloads are
// dispatched to the handlers; all other bytes are returned in order for the
// caller to process as usual. A sequence may span multiple calls.
func (d *Dispatcher) Filter(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		switch d.state {
		case stateEsc:
			if b == 'P' {
				d.state = stateBody
				d.body = d.body[:0]
				continue
			}
			d.state = statePass
			out = append(out, esc, b)
		case stateBody:
			switch b {
			case esc:
				d.state = stateBodyEsc
			case can, sub:
				d.state = statePass
				d.body = d.body[:0]
			default:
				d.body = append(d.body, b)
			}
		case stateBodyEsc:
			if b == st {
				d.dispatch()
				d.state = statePass
				continue
			}
			// not a terminator, the ESC belongs to the payload
			d.body = append(d.body, esc)
			if b == esc {
				continue
			}
			d.body = append(d.body, b)
			d.state = stateBody
		default:
			if b == esc {
				d.state = stateEsc
				continue
			}
			out = append(out, b)
		}
	}
	return out
}

func (d *Dispatcher) dispatch() {
	body := d.body
	d.body = nil
	for _, h := range d.handlers {
		if h.HandleDCS(body) {
			return
		}
	}
	sxlog.Printf("unhandled DCS payload, %d bytes", len(body))
}
