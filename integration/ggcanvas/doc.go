// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggcanvas draws touch strokes from gogpu pointer events into a gg
// raster canvas and presents it in a GPU window.
//
// The data flow is:
//
//	PointerEventSource -> Tracker -> gg.Context (draw) -> GPU Texture -> Window
//
// # Architecture
//
// Canvas owns a gg.Context, a touchstroke.Tracker drawing on it and the
// texture upload pipeline:
//
//   - Attach subscribes the tracker to a gpucontext.PointerEventSource
//   - every handled pointer event marks the canvas dirty
//   - RenderTo uploads dirty pixels and draws the texture to the window
//
// Pointer events map onto the touch lifecycle one to one: PointerDown
// starts a contact, PointerMove moves it, PointerUp ends it and
// PointerCancel cancels it. PointerEnter and PointerLeave are ignored.
//
// # Usage
//
//	canvas, err := ggcanvas.New(800, 600)
//	if err != nil {
//	    return err
//	}
//	defer canvas.Close()
//
//	if pes, ok := app.EventSource().(gpucontext.PointerEventSource); ok {
//	    canvas.Attach(pes)
//	}
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Deliver pointer events and render
// from the window's event loop.
//
// # Integration Without Circular Imports
//
// This package depends only on gpucontext interfaces, never on gogpu
// itself:
//
//   - gpucontext.PointerEventSource for input
//   - gpucontext.TextureDrawer and gpucontext.TextureCreator for output
package ggcanvas
