// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/touchstroke"
)

// EventKind returns the touch lifecycle kind for a pointer event type.
// Enter and leave notifications have no touch equivalent and report false.
func EventKind(t gpucontext.PointerEventType) (touchstroke.EventKind, bool) {
	switch t {
	case gpucontext.PointerDown:
		return touchstroke.EventStart, true
	case gpucontext.PointerMove:
		return touchstroke.EventMove, true
	case gpucontext.PointerUp:
		return touchstroke.EventEnd, true
	case gpucontext.PointerCancel:
		return touchstroke.EventCancel, true
	default:
		return 0, false
	}
}

// NewEvent converts a pointer event to a single-contact tracker event.
// Window coordinates are mapped onto the canvas through vp.
func NewEvent(ev gpucontext.PointerEvent, vp touchstroke.Viewport) (touchstroke.Event, bool) {
	kind, ok := EventKind(ev.Type)
	if !ok {
		return touchstroke.Event{}, false
	}
	return touchstroke.Event{
		Kind:    kind,
		Changed: []touchstroke.Contact{vp.Contact(ev.PointerID, ev.X, ev.Y)},
	}, true
}
