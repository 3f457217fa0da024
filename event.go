package touchstroke

// EventKind identifies a touch lifecycle event.
type EventKind int

const (
	// EventStart reports contacts that began touching the surface.
	EventStart EventKind = iota + 1
	// EventMove reports contacts whose position changed.
	EventMove
	// EventEnd reports contacts that lifted off the surface.
	EventEnd
	// EventCancel reports contacts whose tracking the host aborted.
	EventCancel
)

// String returns the lower-case event name used in session scripts.
func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventMove:
		return "move"
	case EventEnd:
		return "end"
	case EventCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ParseEventKind is the inverse of EventKind.String.
func ParseEventKind(s string) (EventKind, bool) {
	switch s {
	case "start":
		return EventStart, true
	case "move":
		return EventMove, true
	case "end":
		return EventEnd, true
	case "cancel":
		return EventCancel, true
	default:
		return 0, false
	}
}

// DefaultPreventer is implemented by hosts whose platform performs default
// handling of touch events (for example synthesizing mouse events).
type DefaultPreventer interface {
	PreventDefault()
}

// Event is one batch delivered by the host.
type Event struct {
	Kind EventKind

	// Changed holds only the contacts affected by this event,
	// not every active contact.
	Changed []Contact

	// Default, when non-nil, is asked to suppress platform default handling.
	Default DefaultPreventer
}
