package canvas

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/touchstroke"
)

func TestRecorder_CapturesStroke(t *testing.T) {
	rec := NewRecorder(100, 100)
	tr := touchstroke.New(rec)

	tr.Handle(touchstroke.Event{Kind: touchstroke.EventStart, Changed: []touchstroke.Contact{touchstroke.NewContact(2, 10, 10)}})
	tr.Handle(touchstroke.Event{Kind: touchstroke.EventMove, Changed: []touchstroke.Contact{touchstroke.NewContact(2, 40, 10)}})
	tr.Handle(touchstroke.Event{Kind: touchstroke.EventEnd, Changed: []touchstroke.Contact{touchstroke.NewContact(2, 50, 20)}})

	r := rec.Finish()
	pool := r.Resources()
	want := touchstroke.Color(2)

	var fills, strokes, rects int
	for _, cmd := range r.Commands() {
		switch c := cmd.(type) {
		case recording.FillPathCommand:
			fills++
			checkBrush(t, pool.GetBrush(c.Brush), want)
		case recording.StrokePathCommand:
			strokes++
			if c.Stroke.Width != touchstroke.DefaultLineWidth {
				t.Errorf("stroke width = %v, want %v", c.Stroke.Width, touchstroke.DefaultLineWidth)
			}
			checkBrush(t, pool.GetBrush(c.Brush), want)
		case recording.FillRectCommand:
			rects++
			if c.Rect.MinX != 46 || c.Rect.MinY != 16 || c.Rect.MaxX != 54 || c.Rect.MaxY != 24 {
				t.Errorf("marker rect = %+v, want [46,16]-[54,24]", c.Rect)
			}
			checkBrush(t, pool.GetBrush(c.Brush), want)
		}
	}

	if fills != 1 || strokes != 2 || rects != 1 {
		t.Errorf("fills=%d strokes=%d rects=%d, want 1, 2, 1", fills, strokes, rects)
	}
}

func TestRecorder_CancelRecordsNothing(t *testing.T) {
	rec := NewRecorder(10, 10)
	tr := touchstroke.New(rec)
	tr.Handle(touchstroke.Event{Kind: touchstroke.EventCancel, Changed: []touchstroke.Contact{touchstroke.NewContact(1, 1, 1)}})

	if n := len(rec.Finish().Commands()); n != 0 {
		t.Errorf("recorded %d commands, want 0", n)
	}
}

func checkBrush(t *testing.T, b recording.Brush, want gg.RGBA) {
	t.Helper()
	sb, ok := b.(recording.SolidBrush)
	if !ok {
		t.Fatalf("brush is %T, want recording.SolidBrush", b)
	}
	if sb.Color != want {
		t.Errorf("brush color = %+v, want %+v", sb.Color, want)
	}
}
