package fixation

import (
	"fmt"
	"strings"
)

// TargetType identifies which of the three component shapes a target is
// composed of: A is the center dot, B the outer circle, C the cross.
// Valid values are the seven combinations A, B, C, AB, AC, BC, ABC.
type TargetType string

// The seven valid target types.
const (
	TypeA   TargetType = "A"
	TypeB   TargetType = "B"
	TypeC   TargetType = "C"
	TypeAB  TargetType = "AB"
	TypeAC  TargetType = "AC"
	TypeBC  TargetType = "BC"
	TypeABC TargetType = "ABC"
)

var validTypes = map[TargetType]bool{
	TypeA: true, TypeB: true, TypeC: true,
	TypeAB: true, TypeAC: true, TypeBC: true,
	TypeABC: true,
}

// ParseTargetType normalizes and validates a target type string.
// Input is case-insensitive; the returned value is upper-case.
func ParseTargetType(s string) (TargetType, error) {
	t := TargetType(strings.ToUpper(s))
	if !validTypes[t] {
		return "", fmt.Errorf("%w: %q (must be one of A, B, C, AB, AC, BC, ABC)",
			ErrInvalidTargetType, s)
	}
	return t, nil
}

// HasCenter reports whether the center dot (A) is part of the target.
func (t TargetType) HasCenter() bool { return strings.ContainsRune(string(t), 'A') }

// HasOuter reports whether the outer circle (B) is part of the target.
func (t TargetType) HasOuter() bool { return strings.ContainsRune(string(t), 'B') }

// HasCross reports whether the cross (C) is part of the target.
func (t TargetType) HasCross() bool { return strings.ContainsRune(string(t), 'C') }

// TargetSpec describes a fixation target: which components to draw, how
// large they are in degrees of visual angle, and their colors.
//
// CrossWidthDeg is the width of the cross's strokes, not a diameter; the
// cross always spans the outer circle's diameter, whether or not the
// outer circle itself is drawn.
type TargetSpec struct {
	Type TargetType

	CenterDiameterDeg float64 // center dot diameter in degrees
	OuterDiameterDeg  float64 // outer circle diameter in degrees
	CrossWidthDeg     float64 // cross stroke width in degrees

	CenterColor Color
	OuterColor  Color
	CrossColor  Color

	// BackgroundDiameterDeg, when positive, adds a solid background
	// circle behind the target and drives the canvas size. Zero means no
	// background.
	BackgroundDiameterDeg float64
	// BackgroundColor is the background circle's fill. Nil means the
	// background circle is not drawn even when a diameter is given (the
	// diameter still drives the canvas size).
	BackgroundColor *Color
}

// DefaultTargetSpec returns the canonical ABC target: a 0.6 degree black
// outer circle with a white 0.15 degree cross and a 0.1 degree black
// center dot, the combination found most stable by Thaler et al. (2013).
func DefaultTargetSpec() TargetSpec {
	return TargetSpec{
		Type:              TypeABC,
		CenterDiameterDeg: 0.1,
		OuterDiameterDeg:  0.6,
		CrossWidthDeg:     0.15,
		CenterColor:       Black,
		OuterColor:        Black,
		CrossColor:        White,
	}
}

// Validate normalizes the target type and checks sizes and color
// constraints. It mutates only the Type field (case normalization).
func (s *TargetSpec) Validate() error {
	t, err := ParseTargetType(string(s.Type))
	if err != nil {
		return err
	}
	s.Type = t

	if s.CenterDiameterDeg <= 0 {
		return fmt.Errorf("%w: center diameter %g degrees (must be > 0)",
			ErrInvalidGeometry, s.CenterDiameterDeg)
	}
	if s.OuterDiameterDeg <= 0 {
		return fmt.Errorf("%w: outer diameter %g degrees (must be > 0)",
			ErrInvalidGeometry, s.OuterDiameterDeg)
	}
	if s.CrossWidthDeg <= 0 {
		return fmt.Errorf("%w: cross width %g degrees (must be > 0)",
			ErrInvalidGeometry, s.CrossWidthDeg)
	}
	if s.BackgroundDiameterDeg < 0 {
		return fmt.Errorf("%w: background diameter %g degrees (must be >= 0)",
			ErrInvalidGeometry, s.BackgroundDiameterDeg)
	}

	return validateColors(s)
}
