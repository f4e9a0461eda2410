package tcellsixel

import (
	"time"
)

// EventSixel is emitted after a sixel stream decoded into a new placement.
// It satisfies tcell.Event so it can travel through an application's usual
// event plumbing.
type EventSixel struct {
	when      time.Time
	placement *Placement
}

func (ev *EventSixel) When() time.Time {
	return ev.when
}

// Placement returns the placement the event announces.
func (ev *EventSixel) Placement() *Placement {
	return ev.placement
}

func newEventSixel(p *Placement) *EventSixel {
	return &EventSixel{
		when:      time.Now(),
		placement: p,
	}
}
