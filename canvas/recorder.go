package canvas

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/touchstroke"
)

// Recorder captures strokes as vector commands.
//
// Call Finish to obtain the recording, then play it back onto a backend
// created with recording.NewBackend.
type Recorder struct {
	rec *recording.Recorder
}

var _ touchstroke.Surface = (*Recorder)(nil)

// NewRecorder creates a recorder surface of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{rec: recording.NewRecorder(width, height)}
}

// Unwrap returns the underlying gg recorder.
func (r *Recorder) Unwrap() *recording.Recorder {
	return r.rec
}

// Clear fills the whole recording with color.
func (r *Recorder) Clear(color string) {
	r.rec.ClearWithColor(gg.Hex(color))
}

// Finish ends recording and returns the captured commands.
func (r *Recorder) Finish() *recording.Recording {
	return r.rec.FinishRecording()
}

// BeginPath discards the current path.
func (r *Recorder) BeginPath() {
	r.rec.ClearPath()
}

// Arc adds a circular arc to the current path.
func (r *Recorder) Arc(x, y, radius, a0, a1 float64) {
	r.rec.DrawArc(x, y, radius, a0, a1)
}

func (r *Recorder) MoveTo(x, y float64) {
	r.rec.MoveTo(x, y)
}

func (r *Recorder) LineTo(x, y float64) {
	r.rec.LineTo(x, y)
}

func (r *Recorder) Fill() {
	r.rec.Fill()
}

func (r *Recorder) Stroke() {
	r.rec.Stroke()
}

func (r *Recorder) SetLineWidth(width float64) {
	r.rec.SetLineWidth(width)
}

// FillRect records a rectangle fill. The current path is left untouched.
func (r *Recorder) FillRect(x, y, w, h float64) {
	r.rec.FillRectangle(x, y, w, h)
}

// SetFillStyle sets the fill brush from a CSS hex string.
func (r *Recorder) SetFillStyle(color string) {
	r.rec.SetFillStyle(recording.NewSolidBrush(gg.Hex(color)))
}

// SetStrokeStyle sets the stroke brush from a CSS hex string.
func (r *Recorder) SetStrokeStyle(color string) {
	r.rec.SetStrokeStyle(recording.NewSolidBrush(gg.Hex(color)))
}
