// Package session loads recorded touch sessions and replays them through a
// touchstroke.Tracker.
//
// A session is a YAML document:
//
//	width: 640
//	height: 480
//	background: "#fff"
//	events:
//	  - kind: start
//	    touches: [{id: 1, x: 10, y: 10}]
//	  - kind: move
//	    touches: [{id: 1, x: 20, y: 15}]
//	  - kind: end
//	    touches: [{id: 1, x: 25, y: 15}]
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/touchstroke"
)

// Defaults applied to sessions that omit a field.
const (
	DefaultWidth      = 640
	DefaultHeight     = 480
	DefaultBackground = "#fff"
)

// Errors returned by Load and Validate.
var (
	ErrUnknownKind = errors.New("session: unknown event kind")
	ErrNoTouches   = errors.New("session: event has no touches")
	ErrDimensions  = errors.New("session: invalid dimensions")
)

// Touch is one contact in a session event.
type Touch struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

// Step is one event batch in a session.
type Step struct {
	Kind    string  `yaml:"kind"`
	Touches []Touch `yaml:"touches"`
}

// Session is a recorded sequence of touch events plus the surface it was
// recorded on.
type Session struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Background string `yaml:"background"`
	Events     []Step `yaml:"events"`
}

// Load decodes and validates a session from r.
func Load(r io.Reader) (*Session, error) {
	var s Session
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("session: empty document")
		}
		return nil, fmt.Errorf("session: decode: %w", err)
	}
	s.applyDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Session, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func (s *Session) applyDefaults() {
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Height == 0 {
		s.Height = DefaultHeight
	}
	if s.Background == "" {
		s.Background = DefaultBackground
	}
}

// Validate checks dimensions and every event.
// Errors name the offending event index.
func (s *Session) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrDimensions, s.Width, s.Height)
	}
	for i, st := range s.Events {
		if _, ok := touchstroke.ParseEventKind(st.Kind); !ok {
			return fmt.Errorf("event %d: %w %q", i, ErrUnknownKind, st.Kind)
		}
		if len(st.Touches) == 0 {
			return fmt.Errorf("event %d: %w", i, ErrNoTouches)
		}
	}
	return nil
}

// Event converts step i to a tracker event.
func (s *Session) Event(i int) touchstroke.Event {
	st := s.Events[i]
	kind, _ := touchstroke.ParseEventKind(st.Kind)
	changed := make([]touchstroke.Contact, len(st.Touches))
	for j, t := range st.Touches {
		changed[j] = touchstroke.NewContact(t.ID, t.X, t.Y)
	}
	return touchstroke.Event{Kind: kind, Changed: changed}
}

// Save encodes s as YAML to w.
func (s *Session) Save(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}
	return enc.Close()
}

// Replay delivers every event of s to t in order.
// It stops early with ctx.Err() when ctx is cancelled between events.
func Replay(ctx context.Context, s *Session, t *touchstroke.Tracker) error {
	log := touchstroke.Logger()
	for i := range s.Events {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev := s.Event(i)
		log.Debug("session: event", "index", i, "kind", ev.Kind.String(), "touches", len(ev.Changed))
		t.Handle(ev)
	}
	log.Info("session: replayed", "events", len(s.Events), "active", t.Len())
	return nil
}
