package canvas

import (
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/touchstroke"
)

// Context draws on a gg.Context.
//
// Rendering errors do not interrupt event handling: they are logged at Warn
// level and the first one is kept for Err.
//
// Context is NOT safe for concurrent use.
type Context struct {
	dc     *gg.Context
	fill   gg.RGBA
	stroke gg.RGBA
	err    error
}

var _ touchstroke.Surface = (*Context)(nil)

// NewContext wraps dc. Fill and stroke styles start as opaque black, like a
// fresh HTML canvas.
func NewContext(dc *gg.Context) *Context {
	return &Context{dc: dc, fill: gg.Black, stroke: gg.Black}
}

// GG returns the wrapped gg context.
func (c *Context) GG() *gg.Context {
	return c.dc
}

// Err returns the first rendering error, if any.
func (c *Context) Err() error {
	return c.err
}

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.dc.ClearPath()
}

// Arc adds a circular arc to the current path.
func (c *Context) Arc(x, y, radius, a0, a1 float64) {
	c.dc.DrawArc(x, y, radius, a0, a1)
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.dc.MoveTo(x, y)
}

// LineTo adds a line to (x, y) to the current path.
func (c *Context) LineTo(x, y float64) {
	c.dc.LineTo(x, y)
}

// Fill fills and clears the current path with the fill style.
func (c *Context) Fill() {
	c.dc.SetFillBrush(gg.Solid(c.fill))
	c.check("fill", c.dc.Fill())
}

// Stroke strokes and clears the current path with the stroke style.
func (c *Context) Stroke() {
	c.dc.SetStrokeBrush(gg.Solid(c.stroke))
	c.check("stroke", c.dc.Stroke())
}

// FillRect fills the rectangle with the fill style.
// Any pending path is discarded first, since gg builds rectangles as paths.
func (c *Context) FillRect(x, y, w, h float64) {
	c.dc.ClearPath()
	c.dc.DrawRectangle(x, y, w, h)
	c.Fill()
}

// SetFillStyle sets the fill color from a CSS hex string.
func (c *Context) SetFillStyle(color string) {
	c.fill = gg.Hex(color)
}

// SetStrokeStyle sets the stroke color from a CSS hex string.
func (c *Context) SetStrokeStyle(color string) {
	c.stroke = gg.Hex(color)
}

// SetLineWidth sets the stroke width.
func (c *Context) SetLineWidth(width float64) {
	c.dc.SetLineWidth(width)
}

func (c *Context) check(op string, err error) {
	if err == nil {
		return
	}
	touchstroke.Logger().Warn("canvas: render failed", "op", op, "err", err)
	if c.err == nil {
		c.err = fmt.Errorf("canvas: %s: %w", op, err)
	}
}
