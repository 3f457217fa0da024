// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggcanvas

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/touchstroke"
	"github.com/gogpu/touchstroke/canvas"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("ggcanvas: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("ggcanvas: invalid dimensions")
)

// textureDestroyer matches the gogpu.Texture.Destroy signature.
type textureDestroyer interface {
	Destroy()
}

// Canvas is a gg raster canvas whose strokes follow gogpu pointer events.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	dc      *gg.Context
	surface *canvas.Context
	tracker *touchstroke.Tracker
	view    touchstroke.Viewport

	texture     gpucontext.Texture
	dirty       bool // Needs GPU upload
	sizeChanged bool // Texture must be recreated
	width       int
	height      int
	closed      bool
}

// New creates a transparent canvas of the given size with a tracker
// configured by opts.
func New(width, height int, opts ...touchstroke.Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	dc := gg.NewContext(width, height)
	surface := canvas.NewContext(dc)
	return &Canvas{
		dc:      dc,
		surface: surface,
		tracker: touchstroke.New(surface, opts...),
		width:   width,
		height:  height,
		dirty:   true, // First render creates the texture
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNew(width, height int, opts ...touchstroke.Option) *Canvas {
	c, err := New(width, height, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context, or nil if the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.dc
}

// Tracker returns the tracker fed by HandlePointer.
func (c *Canvas) Tracker() *touchstroke.Tracker {
	return c.tracker
}

// Err returns the first rendering error reported by gg, if any.
func (c *Canvas) Err() error {
	return c.surface.Err()
}

// Size returns the canvas width and height in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Viewport returns the mapping from window coordinates to canvas pixels.
// RenderToEx updates it to the position the canvas is drawn at.
func (c *Canvas) Viewport() touchstroke.Viewport {
	return c.view
}

// Clear fills the canvas with a CSS hex color.
func (c *Canvas) Clear(color string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.dc.ClearWithColor(gg.Hex(color))
	c.dirty = true
	return nil
}

// Attach routes the pointer events of src to the canvas.
func (c *Canvas) Attach(src gpucontext.PointerEventSource) {
	src.OnPointer(c.HandlePointer)
}

// HandlePointer feeds one pointer event to the tracker.
// Events of a closed canvas and enter/leave notifications are dropped.
func (c *Canvas) HandlePointer(ev gpucontext.PointerEvent) {
	if c.closed {
		return
	}
	tev, ok := NewEvent(ev, c.view)
	if !ok {
		return
	}
	c.tracker.Handle(tev)
	c.dirty = true
}

// MarkDirty flags the canvas for GPU upload on the next render.
func (c *Canvas) MarkDirty() {
	c.dirty = true
}

// IsDirty returns true if the canvas has changes that are not uploaded yet.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// Resize changes canvas dimensions.
// This recreates internal buffers and clears the canvas; active contacts
// keep drawing on the new buffer.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	if err := c.dc.Resize(width, height); err != nil {
		return fmt.Errorf("ggcanvas: context resize failed: %w", err)
	}
	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Flush uploads the canvas pixels if dirty and returns the texture.
//
// The texture is created with creator on first use and after a resize.
// Later flushes update it in place when it implements
// gpucontext.TextureUpdater, and recreate it otherwise.
func (c *Canvas) Flush(creator gpucontext.TextureCreator) (gpucontext.Texture, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}

	if !c.dirty && !c.sizeChanged && c.texture != nil {
		return c.texture, nil
	}

	if err := c.dc.FlushGPU(); err != nil {
		// CPU-rendered strokes are already in the pixmap.
		touchstroke.Logger().Warn("ggcanvas: gpu flush failed", "err", err)
	}
	pm := c.dc.ResizeTarget()
	data := pm.Data()

	if u, ok := c.texture.(gpucontext.TextureUpdater); ok && !c.sizeChanged {
		if err := u.UpdateData(data); err != nil {
			return nil, fmt.Errorf("ggcanvas: texture update failed: %w", err)
		}
		c.dirty = false
		return c.texture, nil
	}

	if creator == nil {
		return nil, ErrInvalidRenderer
	}
	tex, err := creator.NewTextureFromRGBA(pm.Width(), pm.Height(), data)
	if err != nil {
		return nil, fmt.Errorf("ggcanvas: NewTextureFromRGBA failed: %w", err)
	}
	// gg pixmap data is premultiplied alpha.
	if pt, ok := tex.(interface{ SetPremultiplied(bool) }); ok {
		pt.SetPremultiplied(true)
	}
	destroy(c.texture)
	c.texture = tex
	c.sizeChanged = false
	c.dirty = false
	return tex, nil
}

// Texture returns the current GPU texture without flushing.
func (c *Canvas) Texture() gpucontext.Texture {
	return c.texture
}

// Close releases the texture and the gg context.
// Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	destroy(c.texture)
	c.texture = nil
	err := c.dc.Close()
	c.dc = nil
	return err
}

func destroy(tex gpucontext.Texture) {
	if d, ok := tex.(textureDestroyer); ok {
		d.Destroy()
	}
}
