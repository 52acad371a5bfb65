package fixation

// Layout holds the resolved pixel geometry of a target on a specific
// screen. All sizes are derived from the degree sizes in the spec via
// the vertical-axis visual-angle conversion, truncated toward zero.
//
// Truncation rather than rounding is a deliberate precision policy:
// it biases every size at most one pixel small, but experiment scripts
// depend on the exact truncated values, so it must not be changed to
// rounding.
type Layout struct {
	Type TargetType

	CenterDiameterPx     int
	OuterDiameterPx      int
	CrossWidthPx         int
	BackgroundDiameterPx int // 0 when no background diameter was given

	CanvasSize int // square, driving diameter + 2 px of padding
	CenterX    int // floor(CanvasSize / 2)
	CenterY    int
}

// PlanLayout converts the spec's degree sizes to pixels and derives the
// canvas geometry. The spec must already be validated.
//
// The canvas is driven by the explicit background diameter when one is
// given, otherwise by the largest active component, with the outer
// diameter standing in for the cross's spatial extent.
func PlanLayout(spec *TargetSpec, conv *Converter) (*Layout, error) {
	toPx := func(deg float64) (int, error) {
		px, err := conv.VisualAngleToPixels(deg, Vertical)
		if err != nil {
			return 0, err
		}
		return int(px), nil
	}

	l := &Layout{Type: spec.Type}

	var err error
	if l.CenterDiameterPx, err = toPx(spec.CenterDiameterDeg); err != nil {
		return nil, err
	}
	if l.OuterDiameterPx, err = toPx(spec.OuterDiameterDeg); err != nil {
		return nil, err
	}
	if l.CrossWidthPx, err = toPx(spec.CrossWidthDeg); err != nil {
		return nil, err
	}
	if spec.BackgroundDiameterDeg > 0 {
		if l.BackgroundDiameterPx, err = toPx(spec.BackgroundDiameterDeg); err != nil {
			return nil, err
		}
	}

	driving := l.BackgroundDiameterPx
	if driving == 0 {
		if spec.Type.HasCenter() && l.CenterDiameterPx > driving {
			driving = l.CenterDiameterPx
		}
		if (spec.Type.HasOuter() || spec.Type.HasCross()) && l.OuterDiameterPx > driving {
			driving = l.OuterDiameterPx
		}
	}

	l.CanvasSize = driving + 2
	l.CenterX = l.CanvasSize / 2
	l.CenterY = l.CanvasSize / 2
	return l, nil
}

// Scene resolves the layout into the ordered shape list both encoders
// draw, back-to-front: background circle, outer circle, clipped cross,
// center dot.
func (l *Layout) Scene(spec *TargetSpec) *Scene {
	s := &Scene{
		Size:    l.CanvasSize,
		CenterX: l.CenterX,
		CenterY: l.CenterY,
	}

	if l.BackgroundDiameterPx > 0 && spec.BackgroundColor != nil {
		s.Shapes = append(s.Shapes, Disc{
			CX: l.CenterX, CY: l.CenterY,
			Radius: l.BackgroundDiameterPx / 2,
			Color:  *spec.BackgroundColor,
		})
	}
	if spec.Type.HasOuter() {
		s.Shapes = append(s.Shapes, Disc{
			CX: l.CenterX, CY: l.CenterY,
			Radius: l.OuterDiameterPx / 2,
			Color:  spec.OuterColor,
		})
	}
	if spec.Type.HasCross() {
		s.Shapes = append(s.Shapes, Cross{
			CX: l.CenterX, CY: l.CenterY,
			HalfLen:    l.OuterDiameterPx / 2,
			Width:      l.CrossWidthPx,
			ClipRadius: l.OuterDiameterPx / 2,
			Color:      spec.CrossColor,
		})
	}
	if spec.Type.HasCenter() {
		s.Shapes = append(s.Shapes, Disc{
			CX: l.CenterX, CY: l.CenterY,
			Radius: l.CenterDiameterPx / 2,
			Color:  spec.CenterColor,
		})
	}
	return s
}
