// Package touchstroke draws finger strokes from touch lifecycle events.
//
// # Overview
//
// A [Tracker] receives start, move, end and cancel events, each carrying the
// contacts that changed, and keeps the ordered collection of contacts that
// are currently touching. For every event it issues canvas-style drawing
// primitives to a [Surface]:
//
//   - start: a filled circle at the first position
//   - move: a line segment from the previous to the new position
//   - end: the final segment plus a small filled square
//   - cancel: nothing; the contact is dropped
//
// Each contact is drawn in a color derived from its identifier by [ColorOf].
//
// # Quick Start
//
//	dc := gg.NewContext(640, 480)
//	t := touchstroke.New(canvas.NewContext(dc))
//
//	t.Handle(touchstroke.Event{
//	    Kind:    touchstroke.EventStart,
//	    Changed: []touchstroke.Contact{touchstroke.NewContact(1, 10, 10)},
//	})
//
// # Surfaces
//
// The canvas package adapts gg raster contexts and gg vector recorders.
// The integration/jscanvas package drives a browser canvas under js/wasm.
//
// # Unknown contacts
//
// Move, end and cancel events for identifiers that are not active are
// skipped without drawing. The rest of the batch is still processed.
package touchstroke
