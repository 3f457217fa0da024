// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package jscanvas

import (
	"syscall/js"

	"github.com/gogpu/touchstroke"
)

// Surface draws through a CanvasRenderingContext2D.
type Surface struct {
	ctx js.Value
}

var _ touchstroke.Surface = (*Surface)(nil)

// NewSurface wraps a CanvasRenderingContext2D value.
func NewSurface(ctx js.Value) *Surface {
	return &Surface{ctx: ctx}
}

func (s *Surface) BeginPath() {
	s.ctx.Call("beginPath")
}

func (s *Surface) Arc(x, y, radius, a0, a1 float64) {
	s.ctx.Call("arc", x, y, radius, a0, a1, false)
}

func (s *Surface) MoveTo(x, y float64) {
	s.ctx.Call("moveTo", x, y)
}

func (s *Surface) LineTo(x, y float64) {
	s.ctx.Call("lineTo", x, y)
}

func (s *Surface) Fill() {
	s.ctx.Call("fill")
}

func (s *Surface) Stroke() {
	s.ctx.Call("stroke")
}

func (s *Surface) FillRect(x, y, w, h float64) {
	s.ctx.Call("fillRect", x, y, w, h)
}

func (s *Surface) SetFillStyle(color string) {
	s.ctx.Set("fillStyle", color)
}

func (s *Surface) SetStrokeStyle(color string) {
	s.ctx.Set("strokeStyle", color)
}

func (s *Surface) SetLineWidth(width float64) {
	s.ctx.Set("lineWidth", width)
}
