// Package svg writes the minimal SVG subset the vector encoder needs:
// a fixed-size document, filled circles, clip-path definitions, and
// butt-capped stroked lines.
package svg

import (
	"fmt"
	"image/color"
	"io"
)

// Writer emits an SVG document to an underlying io.Writer. Write errors
// are sticky: the first one is kept and every later call becomes a
// no-op, so callers check Err once after End.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first write error, if any.
func (s *Writer) Err() error { return s.err }

func (s *Writer) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, args...)
}

// Start opens the document with the given pixel dimensions.
func (s *Writer) Start(width, height int) {
	s.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	s.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
}

// End closes the document.
func (s *Writer) End() {
	s.printf("</svg>\n")
}

// Circle emits a filled circle with per-shape opacity taken from the
// color's alpha channel.
func (s *Writer) Circle(cx, cy, r int, fill color.NRGBA) {
	s.printf("  <circle cx=\"%d\" cy=\"%d\" r=\"%d\" fill=\"%s\"%s/>\n",
		cx, cy, r, paint(fill), opacityAttr("fill-opacity", fill))
}

// ClipCircle emits a clipPath definition containing a single circle.
// The id is referenced by later shapes via their clip argument.
func (s *Writer) ClipCircle(id string, cx, cy, r int) {
	s.printf("  <defs>\n")
	s.printf("    <clipPath id=\"%s\">\n", id)
	s.printf("      <circle cx=\"%d\" cy=\"%d\" r=\"%d\"/>\n", cx, cy, r)
	s.printf("    </clipPath>\n")
	s.printf("  </defs>\n")
}

// Line emits a stroked segment with butt caps. A non-empty clip
// restricts the stroke to the named clipPath.
func (s *Writer) Line(x1, y1, x2, y2, width int, stroke color.NRGBA, clip string) {
	clipAttr := ""
	if clip != "" {
		clipAttr = fmt.Sprintf(" clip-path=\"url(#%s)\"", clip)
	}
	s.printf("  <line x1=\"%d\" y1=\"%d\" x2=\"%d\" y2=\"%d\" stroke=\"%s\" stroke-width=\"%d\" stroke-linecap=\"butt\"%s%s/>\n",
		x1, y1, x2, y2, paint(stroke), width, opacityAttr("stroke-opacity", stroke), clipAttr)
}

// paint formats a color as rgb(r,g,b); opacity is carried separately.
func paint(c color.NRGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// opacityAttr returns the opacity attribute for non-opaque colors and
// nothing for alpha 255, keeping the common opaque case compact.
func opacityAttr(name string, c color.NRGBA) string {
	if c.A == 255 {
		return ""
	}
	return fmt.Sprintf(" %s=\"%.4g\"", name, float64(c.A)/255)
}
