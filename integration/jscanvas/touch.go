// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package jscanvas

import "github.com/gogpu/touchstroke"

// Touch is the part of a DOM Touch record the tracker needs.
type Touch struct {
	Identifier int
	ClientX    float64
	ClientY    float64
}

// Layout describes where a canvas element sits on the page.
type Layout struct {
	// Left, Top, Width and Height come from getBoundingClientRect.
	Left, Top, Width, Height float64

	// CanvasWidth and CanvasHeight are the element's backing store size
	// (the width and height attributes).
	CanvasWidth, CanvasHeight float64
}

// Viewport returns the mapping from client coordinates to canvas units,
// including any CSS scaling between the element box and its backing store.
func (l Layout) Viewport() touchstroke.Viewport {
	return touchstroke.NewViewport(l.Left, l.Top, l.Width, l.Height, l.CanvasWidth, l.CanvasHeight)
}

// domEventKinds maps DOM touch event names to tracker event kinds.
var domEventKinds = map[string]touchstroke.EventKind{
	"touchstart":  touchstroke.EventStart,
	"touchmove":   touchstroke.EventMove,
	"touchend":    touchstroke.EventEnd,
	"touchcancel": touchstroke.EventCancel,
}

// EventKind returns the tracker event kind for a DOM touch event name.
func EventKind(name string) (touchstroke.EventKind, bool) {
	k, ok := domEventKinds[name]
	return k, ok
}

// NewEvent converts the changedTouches of one DOM event into a tracker event
// with canvas-relative contacts.
func NewEvent(kind touchstroke.EventKind, l Layout, changed []Touch, def touchstroke.DefaultPreventer) touchstroke.Event {
	vp := l.Viewport()
	contacts := make([]touchstroke.Contact, len(changed))
	for i, t := range changed {
		contacts[i] = vp.Contact(t.Identifier, t.ClientX, t.ClientY)
	}
	return touchstroke.Event{Kind: kind, Changed: contacts, Default: def}
}
