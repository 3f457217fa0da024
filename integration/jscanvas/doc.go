// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package jscanvas connects a browser <canvas> element to a
// touchstroke.Tracker when compiled for js/wasm.
//
// The data flow is:
//
//	touchstart/move/end/cancel -> changedTouches -> Tracker -> CanvasRenderingContext2D
//
// # Usage
//
//	el := js.Global().Get("document").Call("getElementById", "canvas")
//	b, err := jscanvas.Bind(el)
//	if err != nil {
//	    return err
//	}
//	defer b.Release()
//
// Touch coordinates are converted to canvas units with the element's
// bounding rectangle, scaled by the ratio of its backing store to its CSS
// box (see [Layout] and [NewEvent], which also build on non-wasm hosts). Bind sets the CSS touch-action of the
// element to "none" so the browser does not scroll or zoom while drawing.
//
// # Thread Safety
//
// Browser event callbacks run on the JavaScript event loop one at a time,
// which is the only goroutine that touches the tracker.
package jscanvas
