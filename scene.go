package fixation

// Scene is the planner-resolved description of a target: an ordered list
// of shape primitives with concrete pixel geometry, drawn back-to-front.
// Both the raster and vector encoders consume the same scene, which
// keeps the two output formats geometrically consistent.
type Scene struct {
	Size    int // square canvas size in pixels
	CenterX int
	CenterY int
	Shapes  []Shape
}

// Shape is a scene primitive. The two implementations are Disc and
// Cross.
type Shape interface {
	shape()
}

// Disc is a solid filled circle. Radius is in pixels, centered on
// (CX, CY).
type Disc struct {
	CX, CY int
	Radius int
	Color  Color
}

func (Disc) shape() {}

// Cross is a pair of perpendicular full-length strokes centered on
// (CX, CY), each spanning 2*HalfLen along its axis with the given stroke
// Width, clipped to the disc of ClipRadius around the center. The clip
// radius is always the outer circle's radius, whether or not the outer
// circle is part of the scene.
type Cross struct {
	CX, CY     int
	HalfLen    int
	Width      int
	ClipRadius int
	Color      Color
}

func (Cross) shape() {}

// scaled returns a copy of the scene with every pixel quantity
// multiplied by factor. Used for supersampled rasterization; the center
// is scaled rather than re-derived so the target stays aligned with the
// downsampled pixel grid.
//
// A rasterized disc of radius r spans 2r+1 pixels across, so radii and
// half-lengths gain factor/2 when scaled to keep the supersampled extent
// equal to the nominal one. This also keeps the pixel block under each
// nominal pixel at the disc center fully covered, so interior pixels
// survive downsampling exactly.
func (s *Scene) scaled(factor int) *Scene {
	half := factor / 2
	out := &Scene{
		Size:    s.Size * factor,
		CenterX: s.CenterX * factor,
		CenterY: s.CenterY * factor,
		Shapes:  make([]Shape, len(s.Shapes)),
	}
	for i, shape := range s.Shapes {
		switch sh := shape.(type) {
		case Disc:
			sh.CX *= factor
			sh.CY *= factor
			sh.Radius = sh.Radius*factor + half
			out.Shapes[i] = sh
		case Cross:
			sh.CX *= factor
			sh.CY *= factor
			sh.HalfLen = sh.HalfLen*factor + half
			sh.Width *= factor
			sh.ClipRadius = sh.ClipRadius*factor + half
			out.Shapes[i] = sh
		}
	}
	return out
}
