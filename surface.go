package touchstroke

// Surface is the 2D drawing surface a Tracker paints on.
//
// The method set mirrors the subset of the HTML canvas 2D API that strokes
// need, so a browser CanvasRenderingContext2D maps onto it one to one.
// Colors are CSS hex strings such as "#1a3".
//
// A Surface is driven from a single goroutine; implementations need no
// locking.
type Surface interface {
	// BeginPath discards the current path.
	BeginPath()
	// Arc adds a circular arc centred at (x, y) from angle a0 to a1 radians.
	Arc(x, y, radius, a0, a1 float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)

	// Fill fills the current path with the fill style.
	Fill()
	// Stroke strokes the current path with the stroke style and line width.
	Stroke()
	// FillRect fills an axis-aligned rectangle with the fill style.
	FillRect(x, y, w, h float64)

	SetFillStyle(color string)
	SetStrokeStyle(color string)
	SetLineWidth(width float64)
}
