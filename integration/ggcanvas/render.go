// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/touchstroke"
)

// ErrInvalidRenderer is returned when no gpucontext.TextureCreator is
// available to create the canvas texture.
var ErrInvalidRenderer = errors.New("ggcanvas: renderer must implement gpucontext.TextureCreator")

// RenderOptions controls where the canvas is drawn in the window.
type RenderOptions struct {
	// X, Y is the window position of the canvas origin (default: 0, 0).
	X, Y float32
}

// RenderTo draws the canvas at the window origin.
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    canvas.RenderTo(dc.AsTextureDrawer())
//	})
func (c *Canvas) RenderTo(dc gpucontext.TextureDrawer) error {
	return c.RenderToEx(dc, RenderOptions{})
}

// RenderToEx draws the canvas at opts.X, opts.Y.
// Later pointer events are mapped relative to that position, so strokes
// stay under the pointer wherever the canvas is placed.
func (c *Canvas) RenderToEx(dc gpucontext.TextureDrawer, opts RenderOptions) error {
	if c.closed {
		return ErrCanvasClosed
	}
	tex, err := c.Flush(dc.TextureCreator())
	if err != nil {
		return err
	}
	c.view = touchstroke.Viewport{Left: float64(opts.X), Top: float64(opts.Y)}
	return dc.DrawTexture(tex, opts.X, opts.Y)
}
