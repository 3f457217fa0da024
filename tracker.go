package touchstroke

import (
	"log/slog"
	"math"
)

// Tracker turns touch lifecycle events into strokes on a Surface.
//
// It owns the ordered collection of active contacts. Each event handler runs
// to completion and never blocks. A Tracker is NOT safe for concurrent use;
// deliver events from one goroutine.
type Tracker struct {
	surface Surface
	opts    options
	active  []Contact
}

// New creates a Tracker drawing on s.
func New(s Surface, opts ...Option) *Tracker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Tracker{surface: s, opts: o}
}

// Handle dispatches ev to the handler for its kind.
func (t *Tracker) Handle(ev Event) {
	switch ev.Kind {
	case EventStart:
		t.Start(ev)
	case EventMove:
		t.Move(ev)
	case EventEnd:
		t.End(ev)
	case EventCancel:
		t.Cancel(ev)
	default:
		t.logger().Debug("touchstroke: ignoring event", "kind", int(ev.Kind))
	}
}

// Start begins tracking every contact in ev.Changed and marks each start
// position with a filled circle.
func (t *Tracker) Start(ev Event) {
	if ev.Default != nil {
		ev.Default.PreventDefault()
	}
	for _, c := range ev.Changed {
		if i := t.index(c.ID); i >= 0 {
			// Re-delivered start: keep one record per identifier.
			t.logger().Debug("touchstroke: start for active contact", "id", c.ID)
			t.active[i].X, t.active[i].Y = c.X, c.Y
		} else {
			t.active = append(t.active, NewContact(c.ID, c.X, c.Y))
		}
		t.drawDot(c)
	}
}

// Move extends the stroke of every known contact in ev.Changed to its new
// position. Unknown identifiers are skipped.
func (t *Tracker) Move(ev Event) {
	for _, c := range ev.Changed {
		i := t.index(c.ID)
		if i < 0 {
			t.logger().Debug("touchstroke: move for unknown contact", "id", c.ID)
			continue
		}
		t.drawSegment(t.active[i], c)
		t.active[i].X, t.active[i].Y = c.X, c.Y
	}
}

// End draws the final segment and an end marker for every known contact in
// ev.Changed, then stops tracking it.
func (t *Tracker) End(ev Event) {
	for _, c := range ev.Changed {
		i := t.index(c.ID)
		if i < 0 {
			t.logger().Debug("touchstroke: end for unknown contact", "id", c.ID)
			continue
		}
		t.drawSegment(t.active[i], c)
		t.drawMarker(c)
		t.remove(i)
	}
}

// Cancel stops tracking every known contact in ev.Changed without drawing.
func (t *Tracker) Cancel(ev Event) {
	for _, c := range ev.Changed {
		i := t.index(c.ID)
		if i < 0 {
			t.logger().Debug("touchstroke: cancel for unknown contact", "id", c.ID)
			continue
		}
		t.remove(i)
	}
}

// Active returns a copy of the active contacts in the order they started.
func (t *Tracker) Active() []Contact {
	out := make([]Contact, len(t.active))
	copy(out, t.active)
	return out
}

// Len returns the number of active contacts.
func (t *Tracker) Len() int {
	return len(t.active)
}

// Lookup returns the active contact with the given identifier.
func (t *Tracker) Lookup(id int) (Contact, bool) {
	if i := t.index(id); i >= 0 {
		return t.active[i], true
	}
	return Contact{}, false
}

// index returns the slot of id in the active collection, or -1.
// Simultaneous touches are bounded by hardware, so a scan is enough.
func (t *Tracker) index(id int) int {
	for i := range t.active {
		if t.active[i].ID == id {
			return i
		}
	}
	return -1
}

// remove deletes slot i, preserving the order of the remaining contacts.
func (t *Tracker) remove(i int) {
	copy(t.active[i:], t.active[i+1:])
	t.active[len(t.active)-1] = Contact{}
	t.active = t.active[:len(t.active)-1]
}

func (t *Tracker) drawDot(c Contact) {
	s := t.surface
	s.BeginPath()
	s.Arc(c.X, c.Y, t.opts.startRadius, 0, 2*math.Pi)
	s.SetFillStyle(ColorOf(c.ID))
	s.Fill()
}

func (t *Tracker) drawSegment(from, to Contact) {
	s := t.surface
	s.BeginPath()
	s.MoveTo(from.X, from.Y)
	s.LineTo(to.X, to.Y)
	s.SetLineWidth(t.opts.lineWidth)
	s.SetStrokeStyle(ColorOf(to.ID))
	s.Stroke()
}

func (t *Tracker) drawMarker(c Contact) {
	h := t.opts.markerSize
	t.surface.SetFillStyle(ColorOf(c.ID))
	t.surface.FillRect(c.X-h, c.Y-h, 2*h, 2*h)
}

func (t *Tracker) logger() *slog.Logger {
	if t.opts.logger != nil {
		return t.opts.logger
	}
	return Logger()
}
