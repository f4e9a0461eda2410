package tcellsixel

import "errors"

// ErrNotSixel reports that a DCS payload is not a sixel stream. The
// dispatcher treats it as "unhandled" and may offer the payload to other
// handlers.
var ErrNotSixel = errors.New("tcellsixel: not a sixel stream")

// sixelBodyStart scans a DCS payload for the sixel data introducer 'q' and
// returns the offset of the first body byte. Bytes before the introducer
// must be numeric parameters (digits, ';' or space); the parameters select
// aspect ratio and background handling, which we do not implement, so they
// are discarded.
func sixelBodyStart(data []byte) (int, error) {
	for i, b := range data {
		switch {
		case b == 'q':
			return i + 1, nil
		case b >= '0' && b <= '9', b == ';', b == ' ':
			// parameter bytes
		default:
			return 0, ErrNotSixel
		}
	}
	return 0, ErrNotSixel
}
