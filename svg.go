package fixation

import (
	"bytes"

	"github.com/vistools/fixation/internal/svg"
)

// crossClipID names the single clipPath definition a document contains
// when its scene includes a cross.
const crossClipID = "outer-clip"

// RenderSVG produces a standalone SVG document equivalent to the
// rasterized scene: same canvas size, same center, same shapes in the
// same back-to-front order. The cross is drawn as two butt-capped
// stroked segments clipped to the outer circle's boundary; that clip is
// the document's only clipPath definition.
func RenderSVG(scene *Scene) ([]byte, error) {
	var buf bytes.Buffer
	w := svg.NewWriter(&buf)
	w.Start(scene.Size, scene.Size)

	for _, shape := range scene.Shapes {
		switch sh := shape.(type) {
		case Disc:
			w.Circle(sh.CX, sh.CY, sh.Radius, sh.Color.NRGBA())
		case Cross:
			w.ClipCircle(crossClipID, sh.CX, sh.CY, sh.ClipRadius)
			stroke := sh.Color.NRGBA()
			w.Line(sh.CX-sh.HalfLen, sh.CY, sh.CX+sh.HalfLen, sh.CY, sh.Width, stroke, crossClipID)
			w.Line(sh.CX, sh.CY-sh.HalfLen, sh.CX, sh.CY+sh.HalfLen, sh.Width, stroke, crossClipID)
		}
	}

	w.End()
	if err := w.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
