// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package jscanvas

import (
	"errors"
	"syscall/js"

	"github.com/gogpu/touchstroke"
)

// Common errors returned by Bind.
var (
	// ErrNotCanvas is returned when the element is missing or has no 2D context.
	ErrNotCanvas = errors.New("jscanvas: element is not a canvas")
)

// touchEvents lists the DOM events a Binding listens to.
var touchEvents = []string{"touchstart", "touchend", "touchcancel", "touchmove"}

// Binding is a canvas element wired to a Tracker.
type Binding struct {
	el      js.Value
	tracker *touchstroke.Tracker
	funcs   []js.Func
}

// Bind creates a Tracker drawing on el's 2D context and subscribes it to
// el's touch events.
func Bind(el js.Value, opts ...touchstroke.Option) (*Binding, error) {
	if el.IsUndefined() || el.IsNull() {
		return nil, ErrNotCanvas
	}
	ctx := el.Call("getContext", "2d")
	if ctx.IsUndefined() || ctx.IsNull() {
		return nil, ErrNotCanvas
	}

	b := &Binding{
		el:      el,
		tracker: touchstroke.New(NewSurface(ctx), opts...),
	}
	el.Get("style").Set("touchAction", "none")

	for _, name := range touchEvents {
		kind, _ := EventKind(name)
		fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
			if len(args) > 0 {
				b.dispatch(kind, args[0])
			}
			return nil
		})
		el.Call("addEventListener", name, fn, false)
		b.funcs = append(b.funcs, fn)
	}

	touchstroke.Logger().Info("jscanvas: bound",
		"id", el.Get("id").String(),
		"width", el.Get("width").Int(),
		"height", el.Get("height").Int())
	return b, nil
}

// Tracker returns the tracker receiving the element's events.
func (b *Binding) Tracker() *touchstroke.Tracker {
	return b.tracker
}

// Release removes the event listeners and frees their callbacks.
func (b *Binding) Release() {
	for i, name := range touchEvents {
		if i >= len(b.funcs) {
			break
		}
		b.el.Call("removeEventListener", name, b.funcs[i], false)
		b.funcs[i].Release()
	}
	b.funcs = nil
}

// dispatch converts a DOM TouchEvent and hands it to the tracker.
func (b *Binding) dispatch(kind touchstroke.EventKind, evt js.Value) {
	b.tracker.Handle(NewEvent(kind, b.layout(), changedTouches(evt), domEvent{evt}))
}

// layout reads the element's client rectangle and backing store size.
func (b *Binding) layout() Layout {
	rect := b.el.Call("getBoundingClientRect")
	return Layout{
		Left:         rect.Get("left").Float(),
		Top:          rect.Get("top").Float(),
		Width:        rect.Get("width").Float(),
		Height:       rect.Get("height").Float(),
		CanvasWidth:  b.el.Get("width").Float(),
		CanvasHeight: b.el.Get("height").Float(),
	}
}

func changedTouches(evt js.Value) []Touch {
	list := evt.Get("changedTouches")
	n := list.Length()
	out := make([]Touch, n)
	for i := range n {
		t := list.Index(i)
		out[i] = Touch{
			Identifier: t.Get("identifier").Int(),
			ClientX:    t.Get("clientX").Float(),
			ClientY:    t.Get("clientY").Float(),
		}
	}
	return out
}

// domEvent adapts a DOM Event to touchstroke.DefaultPreventer.
type domEvent struct {
	v js.Value
}

func (e domEvent) PreventDefault() {
	e.v.Call("preventDefault")
}
