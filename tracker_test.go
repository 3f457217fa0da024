package touchstroke

import (
	"bytes"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

// traceSurface records every call as a short string.
type traceSurface struct {
	calls []string
}

var _ Surface = (*traceSurface)(nil)

func (s *traceSurface) add(format string, args ...any) {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
}

func (s *traceSurface) BeginPath()                  { s.add("begin") }
func (s *traceSurface) Arc(x, y, r, a0, a1 float64) { s.add("arc %g,%g r=%g", x, y, r) }
func (s *traceSurface) MoveTo(x, y float64)         { s.add("move %g,%g", x, y) }
func (s *traceSurface) LineTo(x, y float64)         { s.add("line %g,%g", x, y) }
func (s *traceSurface) Fill()                       { s.add("fill") }
func (s *traceSurface) Stroke()                     { s.add("stroke") }
func (s *traceSurface) FillRect(x, y, w, h float64) {
	s.add("rect %g,%g %gx%g", x, y, w, h)
}
func (s *traceSurface) SetFillStyle(c string)   { s.add("fillStyle %s", c) }
func (s *traceSurface) SetStrokeStyle(c string) { s.add("strokeStyle %s", c) }
func (s *traceSurface) SetLineWidth(w float64)  { s.add("lineWidth %g", w) }

func (s *traceSurface) reset() { s.calls = nil }

type preventer struct{ n int }

func (p *preventer) PreventDefault() { p.n++ }

func ev(kind EventKind, cs ...Contact) Event {
	return Event{Kind: kind, Changed: cs}
}

func ids(cs []Contact) []int {
	out := make([]int, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.ID)
	}
	return out
}

func TestTracker_StartAddsContact(t *testing.T) {
	tr := New(&traceSurface{})
	tr.Start(ev(EventStart, NewContact(3, 10, 20)))

	got, ok := tr.Lookup(3)
	if !ok {
		t.Fatal("Lookup(3) not found after start")
	}
	if got != (Contact{ID: 3, X: 10, Y: 20}) {
		t.Errorf("Lookup(3) = %v, want {3 10 20}", got)
	}
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestTracker_StartDrawsDot(t *testing.T) {
	s := &traceSurface{}
	tr := New(s)
	tr.Start(ev(EventStart, NewContact(1, 10, 10)))

	want := []string{
		"begin",
		"arc 10,10 r=4",
		"fillStyle " + ColorOf(1),
		"fill",
	}
	if !reflect.DeepEqual(s.calls, want) {
		t.Errorf("calls = %q, want %q", s.calls, want)
	}
}

func TestTracker_StartPreventsDefault(t *testing.T) {
	p := &preventer{}
	tr := New(&traceSurface{})
	tr.Start(Event{Kind: EventStart, Changed: []Contact{NewContact(1, 0, 0)}, Default: p})
	if p.n != 1 {
		t.Errorf("PreventDefault called %d times, want 1", p.n)
	}
}

func TestTracker_StartTwiceKeepsOneRecord(t *testing.T) {
	tr := New(&traceSurface{})
	tr.Start(ev(EventStart, NewContact(7, 1, 1)))
	tr.Start(ev(EventStart, NewContact(7, 5, 6)))

	if tr.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tr.Len())
	}
	if got, _ := tr.Lookup(7); got.X != 5 || got.Y != 6 {
		t.Errorf("Lookup(7) = %v, want position 5,6", got)
	}
}

func TestTracker_MoveUpdatesInPlace(t *testing.T) {
	s := &traceSurface{}
	tr := New(s)
	tr.Start(ev(EventStart, NewContact(1, 10, 10), NewContact(2, 0, 0)))
	s.reset()

	tr.Move(ev(EventMove, NewContact(1, 20, 15)))

	want := []Contact{{1, 20, 15}, {2, 0, 0}}
	if got := tr.Active(); !reflect.DeepEqual(got, want) {
		t.Errorf("Active() = %v, want %v", got, want)
	}
	wantCalls := []string{
		"begin",
		"move 10,10",
		"line 20,15",
		"lineWidth 4",
		"strokeStyle " + ColorOf(1),
		"stroke",
	}
	if !reflect.DeepEqual(s.calls, wantCalls) {
		t.Errorf("calls = %q, want %q", s.calls, wantCalls)
	}
}

func TestTracker_EndDrawsSegmentAndMarker(t *testing.T) {
	s := &traceSurface{}
	tr := New(s)
	tr.Start(ev(EventStart, NewContact(1, 10, 10)))
	tr.Move(ev(EventMove, NewContact(1, 20, 15)))
	s.reset()

	tr.End(ev(EventEnd, NewContact(1, 25, 15)))

	want := []string{
		"begin",
		"move 20,15",
		"line 25,15",
		"lineWidth 4",
		"strokeStyle " + ColorOf(1),
		"stroke",
		"fillStyle " + ColorOf(1),
		"rect 21,11 8x8",
	}
	if !reflect.DeepEqual(s.calls, want) {
		t.Errorf("calls = %q, want %q", s.calls, want)
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
}

func TestTracker_CancelDrawsNothing(t *testing.T) {
	s := &traceSurface{}
	tr := New(s)
	tr.Start(ev(EventStart, NewContact(1, 10, 10)))
	s.reset()

	tr.Cancel(ev(EventCancel, NewContact(1, 0, 0)))

	if len(s.calls) != 0 {
		t.Errorf("cancel issued draw calls: %q", s.calls)
	}
	if tr.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tr.Len())
	}
}

func TestTracker_UnknownContactIsNoop(t *testing.T) {
	tests := []struct {
		name string
		kind EventKind
	}{
		{"move", EventMove},
		{"end", EventEnd},
		{"cancel", EventCancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &traceSurface{}
			tr := New(s)
			tr.Start(ev(EventStart, NewContact(1, 1, 1)))
			before := tr.Active()
			s.reset()

			tr.Handle(ev(tt.kind, NewContact(99, 5, 5)))

			if got := tr.Active(); !reflect.DeepEqual(got, before) {
				t.Errorf("Active() = %v, want unchanged %v", got, before)
			}
			if len(s.calls) != 0 {
				t.Errorf("unknown contact issued draw calls: %q", s.calls)
			}
		})
	}
}

func TestTracker_UnknownContactDoesNotStopBatch(t *testing.T) {
	tr := New(&traceSurface{})
	tr.Start(ev(EventStart, NewContact(1, 0, 0), NewContact(2, 0, 0)))

	tr.End(ev(EventEnd, NewContact(42, 0, 0), NewContact(2, 3, 3)))

	if got := ids(tr.Active()); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("active ids = %v, want [1]", got)
	}
}

func TestTracker_EndBeforeStart(t *testing.T) {
	tr := New(&traceSurface{})
	tr.End(ev(EventEnd, NewContact(1, 0, 0)))
	tr.Start(ev(EventStart, NewContact(1, 0, 0)))
	if tr.Len() != 1 {
		t.Errorf("Len() = %d, want 1", tr.Len())
	}
}

func TestTracker_ScenarioSingleStroke(t *testing.T) {
	tr := New(&traceSurface{})

	tr.Handle(ev(EventStart, NewContact(1, 10, 10)))
	if got, want := tr.Active(), []Contact{{1, 10, 10}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after start: %v, want %v", got, want)
	}

	tr.Handle(ev(EventMove, NewContact(1, 20, 15)))
	if got, want := tr.Active(), []Contact{{1, 20, 15}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("after move: %v, want %v", got, want)
	}

	tr.Handle(ev(EventEnd, NewContact(1, 25, 15)))
	if got := tr.Active(); len(got) != 0 {
		t.Fatalf("after end: %v, want empty", got)
	}
}

func TestTracker_ScenarioCancelPreservesOrder(t *testing.T) {
	tr := New(&traceSurface{})
	tr.Handle(ev(EventStart, NewContact(2, 1, 1)))
	tr.Handle(ev(EventStart, NewContact(5, 2, 2)))
	tr.Handle(ev(EventStart, NewContact(9, 3, 3)))

	if got := ids(tr.Active()); !reflect.DeepEqual(got, []int{2, 5, 9}) {
		t.Fatalf("active ids = %v, want [2 5 9]", got)
	}

	tr.Handle(ev(EventCancel, NewContact(2, 0, 0)))
	if got := ids(tr.Active()); !reflect.DeepEqual(got, []int{5, 9}) {
		t.Errorf("active ids = %v, want [5 9]", got)
	}
}

func TestTracker_ActiveReturnsCopy(t *testing.T) {
	tr := New(&traceSurface{})
	tr.Start(ev(EventStart, NewContact(1, 1, 1)))

	a := tr.Active()
	a[0].X = 100

	if got, _ := tr.Lookup(1); got.X != 1 {
		t.Errorf("mutating Active() result changed tracker state: %v", got)
	}
}

func TestTracker_Options(t *testing.T) {
	s := &traceSurface{}
	tr := New(s, WithLineWidth(2), WithStartRadius(6), WithMarkerSize(1))
	tr.Start(ev(EventStart, NewContact(1, 0, 0)))
	tr.End(ev(EventEnd, NewContact(1, 10, 10)))

	joined := strings.Join(s.calls, "|")
	for _, want := range []string{"arc 0,0 r=6", "lineWidth 2", "rect 9,9 2x2"} {
		if !strings.Contains(joined, want) {
			t.Errorf("calls %q missing %q", s.calls, want)
		}
	}
}

func TestTracker_UnknownKindIgnored(t *testing.T) {
	s := &traceSurface{}
	tr := New(s)
	tr.Handle(Event{Kind: EventKind(42), Changed: []Contact{NewContact(1, 0, 0)}})
	if tr.Len() != 0 || len(s.calls) != 0 {
		t.Errorf("unknown kind changed state: len=%d calls=%q", tr.Len(), s.calls)
	}
}

func TestTracker_WithLoggerLogsUnknownContact(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tr := New(&traceSurface{}, WithLogger(l))
	tr.Move(ev(EventMove, NewContact(12, 0, 0)))

	out := buf.String()
	if !strings.Contains(out, "unknown contact") || !strings.Contains(out, "id=12") {
		t.Errorf("log output = %q, want unknown contact id=12", out)
	}
}

func BenchmarkTrackerMove(b *testing.B) {
	tr := New(&nopSurface{})
	for id := range 10 {
		tr.Start(ev(EventStart, NewContact(id, 0, 0)))
	}
	moves := ev(EventMove, NewContact(9, 1, 1))
	b.ReportAllocs()
	for b.Loop() {
		tr.Move(moves)
	}
}

type nopSurface struct{}

func (nopSurface) BeginPath()                  {}
func (nopSurface) Arc(_, _, _, _, _ float64)   {}
func (nopSurface) MoveTo(_, _ float64)         {}
func (nopSurface) LineTo(_, _ float64)         {}
func (nopSurface) Fill()                       {}
func (nopSurface) Stroke()                     {}
func (nopSurface) FillRect(_, _, _, _ float64) {}
func (nopSurface) SetFillStyle(string)         {}
func (nopSurface) SetStrokeStyle(string)       {}
func (nopSurface) SetLineWidth(float64)        {}
