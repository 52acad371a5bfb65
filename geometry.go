package fixation

import "fmt"

// ScreenGeometry describes the physical display the target will be shown
// on: its size in millimeters and pixels, and the distance between the
// viewer's eye and the screen. It is immutable once constructed and
// validated at the generator boundary.
type ScreenGeometry struct {
	WidthMM    float64 // physical width in millimeters
	HeightMM   float64 // physical height in millimeters
	WidthPx    int     // resolution width in pixels
	HeightPx   int     // resolution height in pixels
	DistanceMM float64 // viewing distance in millimeters
}

// Validate checks that all dimensions and the viewing distance are
// strictly positive.
func (g ScreenGeometry) Validate() error {
	if g.WidthMM <= 0 || g.HeightMM <= 0 {
		return fmt.Errorf("%w: screen size %gx%g mm (both must be > 0)",
			ErrInvalidGeometry, g.WidthMM, g.HeightMM)
	}
	if g.WidthPx <= 0 || g.HeightPx <= 0 {
		return fmt.Errorf("%w: screen resolution %dx%d px (both must be > 0)",
			ErrInvalidGeometry, g.WidthPx, g.HeightPx)
	}
	if g.DistanceMM <= 0 {
		return fmt.Errorf("%w: viewing distance %g mm (must be > 0)",
			ErrInvalidGeometry, g.DistanceMM)
	}
	return nil
}
