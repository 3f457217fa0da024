package touchstroke

// Viewport maps host coordinates onto surface coordinates.
//
// Hosts report positions relative to something larger than the surface (a
// browser page, a window content area). Left and Top locate the surface
// origin in host coordinates; ScaleX and ScaleY give surface units per host
// unit. A zero scale is treated as 1, so the zero Viewport is the identity.
type Viewport struct {
	Left, Top      float64
	ScaleX, ScaleY float64
}

// NewViewport returns the viewport for a surface whose backing store is
// backingW x backingH units and which the host displays in the box at
// (left, top) of size displayW x displayH. Non-positive sizes leave that
// axis unscaled.
func NewViewport(left, top, displayW, displayH, backingW, backingH float64) Viewport {
	v := Viewport{Left: left, Top: top, ScaleX: 1, ScaleY: 1}
	if displayW > 0 && backingW > 0 {
		v.ScaleX = backingW / displayW
	}
	if displayH > 0 && backingH > 0 {
		v.ScaleY = backingH / displayH
	}
	return v
}

// Point converts a host position to surface coordinates.
func (v Viewport) Point(x, y float64) (float64, float64) {
	sx, sy := v.ScaleX, v.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return (x - v.Left) * sx, (y - v.Top) * sy
}

// Contact builds a Contact for id at host position (x, y).
func (v Viewport) Contact(id int, x, y float64) Contact {
	sx, sy := v.Point(x, y)
	return NewContact(id, sx, sy)
}
