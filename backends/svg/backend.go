// Package svg provides an SVG backend for the gg recording system.
// It turns recorded touch strokes into a standalone SVG document.
//
// Recorded geometry is already in world coordinates, so the backend emits
// paths verbatim and ignores SetTransform.
//
// # Supported Features
//
//   - Solid, linear and radial gradient fills and strokes
//   - Stroke styling (width, cap, join, miter limit, dash patterns)
//   - Rectangle fills
//   - Clipping with Save/Restore scoping
//   - Embedded raster images (PNG data URIs)
//   - Text as <text> elements
//
// Sweep gradients have no SVG equivalent and are painted with their first
// color stop.
//
// # Example
//
//	// Import to register the backend
//	import _ "github.com/gogpu/touchstroke/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	if err := rec.Playback(backend); err != nil {
//	    return err
//	}
//	backend.(recording.FileBackend).SaveToFile("strokes.svg")
package svg

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/text"

	"github.com/gogpu/touchstroke"
)

// ErrNotFinished is returned by output methods called before End.
var ErrNotFinished = errors.New("svg: document not finished")

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// Backend writes recordings as SVG.
// It implements recording.Backend, recording.WriterBackend and
// recording.FileBackend.
type Backend struct {
	width  int
	height int

	body   bytes.Buffer
	defs   bytes.Buffer
	out    []byte
	nextID int

	// open counts <g clip-path> groups opened in the current state;
	// stack holds the counts of outer states.
	open  int
	stack []int
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a new SVG backend.
// The backend must be initialized with Begin before use.
func NewBackend() *Backend {
	return &Backend{}
}

// Begin starts a new document of the given size.
func (b *Backend) Begin(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("svg: invalid dimensions %dx%d", width, height)
	}
	b.width, b.height = width, height
	b.body.Reset()
	b.defs.Reset()
	b.out = nil
	b.nextID = 0
	b.open = 0
	b.stack = b.stack[:0]
	return nil
}

// End closes any open groups and assembles the document.
func (b *Backend) End() error {
	for len(b.stack) > 0 {
		b.Restore()
	}
	b.closeGroups()

	var doc bytes.Buffer
	fmt.Fprintf(&doc, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		b.width, b.height, b.width, b.height)
	if b.defs.Len() > 0 {
		doc.WriteString("<defs>\n")
		doc.Write(b.defs.Bytes())
		doc.WriteString("</defs>\n")
	}
	doc.Write(b.body.Bytes())
	doc.WriteString("</svg>\n")
	b.out = doc.Bytes()
	return nil
}

// Save pushes the clip state.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.open)
	b.open = 0
}

// Restore pops the clip state, closing clip groups opened since Save.
// Restore on an empty stack is a no-op.
func (b *Backend) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.closeGroups()
	b.open = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

// SetTransform is a no-op: recorded paths are already transformed.
func (b *Backend) SetTransform(recording.Matrix) {}

// SetClip opens a group clipped to path.
func (b *Backend) SetClip(path *gg.Path, rule recording.FillRule) {
	if path == nil {
		return
	}
	id := b.id("clip")
	fmt.Fprintf(&b.defs, `<clipPath id="%s"><path d="%s" clip-rule="%s"/></clipPath>`+"\n",
		id, pathData(path), fillRule(rule))
	fmt.Fprintf(&b.body, `<g clip-path="url(#%s)">`+"\n", id)
	b.open++
}

// ClearClip closes the clip groups of the current state.
func (b *Backend) ClearClip() {
	b.closeGroups()
}

// FillPath fills path with brush.
func (b *Backend) FillPath(path *gg.Path, brush recording.Brush, rule recording.FillRule) {
	if path == nil {
		return
	}
	fmt.Fprintf(&b.body, `<path d="%s" %s fill-rule="%s"/>`+"\n",
		pathData(path), b.paint("fill", brush), fillRule(rule))
}

// StrokePath strokes path with brush and stroke style.
func (b *Backend) StrokePath(path *gg.Path, brush recording.Brush, stroke recording.Stroke) {
	if path == nil {
		return
	}
	fmt.Fprintf(&b.body, `<path d="%s" fill="none" %s%s/>`+"\n",
		pathData(path), b.paint("stroke", brush), strokeAttrs(stroke))
}

// FillRect fills an axis-aligned rectangle.
func (b *Backend) FillRect(rect recording.Rect, brush recording.Brush) {
	fmt.Fprintf(&b.body, `<rect x="%s" y="%s" width="%s" height="%s" %s/>`+"\n",
		num(rect.MinX), num(rect.MinY), num(rect.Width()), num(rect.Height()), b.paint("fill", brush))
}

// DrawImage embeds img as a PNG data URI scaled into dst.
// The source rectangle is ignored; the whole image is drawn.
func (b *Backend) DrawImage(img image.Image, _, dst recording.Rect, opts recording.ImageOptions) {
	if img == nil {
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		touchstroke.Logger().Warn("svg: image skipped", "bounds", img.Bounds().String(), "err", err)
		return
	}
	opacity := ""
	if opts.Alpha > 0 && opts.Alpha < 1 {
		opacity = fmt.Sprintf(` opacity="%s"`, num(opts.Alpha))
	}
	fmt.Fprintf(&b.body, `<image x="%s" y="%s" width="%s" height="%s"%s href="data:image/png;base64,%s"/>`+"\n",
		num(dst.MinX), num(dst.MinY), num(dst.Width()), num(dst.Height()), opacity,
		base64.StdEncoding.EncodeToString(buf.Bytes()))
}

// DrawText writes s as a <text> element with its baseline at (x, y).
func (b *Backend) DrawText(s string, x, y float64, face text.Face, brush recording.Brush) {
	size := ""
	if face != nil {
		size = fmt.Sprintf(` font-size="%s"`, num(face.Size()))
	}
	var esc strings.Builder
	_ = xml.EscapeText(&esc, []byte(s))
	fmt.Fprintf(&b.body, `<text x="%s" y="%s"%s %s>%s</text>`+"\n",
		num(x), num(y), size, b.paint("fill", brush), esc.String())
}

// WriteTo writes the finished document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if b.out == nil {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.out)
	return int64(n), err
}

// SaveToFile writes the finished document to path.
func (b *Backend) SaveToFile(path string) error {
	if b.out == nil {
		return ErrNotFinished
	}
	return os.WriteFile(path, b.out, 0o644)
}

// Bytes returns the finished document, or nil before End.
func (b *Backend) Bytes() []byte {
	return b.out
}

func (b *Backend) closeGroups() {
	for ; b.open > 0; b.open-- {
		b.body.WriteString("</g>\n")
	}
}

func (b *Backend) id(prefix string) string {
	b.nextID++
	return prefix + strconv.Itoa(b.nextID)
}

// paint returns the fill or stroke attributes for brush, adding gradient
// definitions as needed.
func (b *Backend) paint(attr string, brush recording.Brush) string {
	switch br := brush.(type) {
	case recording.SolidBrush:
		return colorAttrs(attr, br.Color)
	case *recording.LinearGradientBrush:
		id := b.id("grad")
		fmt.Fprintf(&b.defs, `<linearGradient id="%s" gradientUnits="userSpaceOnUse" x1="%s" y1="%s" x2="%s" y2="%s" spreadMethod="%s">`+"\n",
			id, num(br.Start.X), num(br.Start.Y), num(br.End.X), num(br.End.Y), spread(br.Extend))
		writeStops(&b.defs, br.Stops)
		b.defs.WriteString("</linearGradient>\n")
		return fmt.Sprintf(`%s="url(#%s)"`, attr, id)
	case *recording.RadialGradientBrush:
		id := b.id("grad")
		fmt.Fprintf(&b.defs, `<radialGradient id="%s" gradientUnits="userSpaceOnUse" cx="%s" cy="%s" r="%s" fx="%s" fy="%s" fr="%s" spreadMethod="%s">`+"\n",
			id, num(br.Center.X), num(br.Center.Y), num(br.EndRadius),
			num(br.Focus.X), num(br.Focus.Y), num(br.StartRadius), spread(br.Extend))
		writeStops(&b.defs, br.Stops)
		b.defs.WriteString("</radialGradient>\n")
		return fmt.Sprintf(`%s="url(#%s)"`, attr, id)
	case *recording.SweepGradientBrush:
		if len(br.Stops) > 0 {
			return colorAttrs(attr, br.Stops[0].Color)
		}
	}
	return colorAttrs(attr, gg.Black)
}

func writeStops(w *bytes.Buffer, stops []recording.GradientStop) {
	for _, s := range stops {
		fmt.Fprintf(w, `<stop offset="%s" stop-color="%s"`, num(s.Offset), hexColor(s.Color))
		if s.Color.A < 1 {
			fmt.Fprintf(w, ` stop-opacity="%s"`, num(s.Color.A))
		}
		w.WriteString("/>\n")
	}
}

func colorAttrs(attr string, c gg.RGBA) string {
	s := fmt.Sprintf(`%s="%s"`, attr, hexColor(c))
	if c.A < 1 {
		s += fmt.Sprintf(` %s-opacity="%s"`, attr, num(c.A))
	}
	return s
}

// hexColor formats c as #rrggbb, ignoring alpha.
func hexColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(v*255 + 0.5)
	}
}

func strokeAttrs(s recording.Stroke) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, ` stroke-width="%s"`, num(s.Width))
	switch s.Cap {
	case recording.LineCapRound:
		sb.WriteString(` stroke-linecap="round"`)
	case recording.LineCapSquare:
		sb.WriteString(` stroke-linecap="square"`)
	}
	switch s.Join {
	case recording.LineJoinRound:
		sb.WriteString(` stroke-linejoin="round"`)
	case recording.LineJoinBevel:
		sb.WriteString(` stroke-linejoin="bevel"`)
	default:
		if s.MiterLimit > 0 {
			fmt.Fprintf(&sb, ` stroke-miterlimit="%s"`, num(s.MiterLimit))
		}
	}
	if len(s.DashPattern) > 0 {
		parts := make([]string, len(s.DashPattern))
		for i, d := range s.DashPattern {
			parts[i] = num(d)
		}
		fmt.Fprintf(&sb, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
		if s.DashOffset != 0 {
			fmt.Fprintf(&sb, ` stroke-dashoffset="%s"`, num(s.DashOffset))
		}
	}
	return sb.String()
}

func fillRule(rule recording.FillRule) string {
	if rule == recording.FillRuleEvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

func spread(mode recording.ExtendMode) string {
	switch mode {
	case recording.ExtendRepeat:
		return "repeat"
	case recording.ExtendReflect:
		return "reflect"
	default:
		return "pad"
	}
}

// pathData renders the path verbs as SVG path data.
func pathData(path *gg.Path) string {
	var sb strings.Builder
	path.Iterate(func(verb gg.PathVerb, c []float64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch verb {
		case gg.MoveTo:
			fmt.Fprintf(&sb, "M%s %s", num(c[0]), num(c[1]))
		case gg.LineTo:
			fmt.Fprintf(&sb, "L%s %s", num(c[0]), num(c[1]))
		case gg.QuadTo:
			fmt.Fprintf(&sb, "Q%s %s %s %s", num(c[0]), num(c[1]), num(c[2]), num(c[3]))
		case gg.CubicTo:
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s",
				num(c[0]), num(c[1]), num(c[2]), num(c[3]), num(c[4]), num(c[5]))
		case gg.Close:
			sb.WriteByte('Z')
		}
	})
	return sb.String()
}

// num formats v compactly with at most three decimals.
func num(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
