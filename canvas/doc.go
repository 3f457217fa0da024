// Package canvas adapts gg drawing targets to touchstroke.Surface.
//
// Two adapters are provided:
//
//   - [Context] paints immediately into a *gg.Context pixel buffer.
//   - [Recorder] captures vector commands in a *recording.Recorder, which can
//     later be played back onto any registered recording backend (raster,
//     svg).
//
// gg keeps a single brush for fill and stroke, while the canvas model keeps
// separate fill and stroke styles. Both adapters remember the two styles and
// apply the right one when Fill, Stroke or FillRect is issued.
//
// # Usage
//
//	dc := gg.NewContext(640, 480)
//	surf := canvas.NewContext(dc)
//	t := touchstroke.New(surf)
//	// ... deliver events ...
//	if err := surf.Err(); err != nil {
//	    return err
//	}
//	dc.SavePNG("strokes.png")
package canvas
