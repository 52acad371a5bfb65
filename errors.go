package fixation

import (
	"errors"
	"fmt"
)

// Sentinel errors for the validation failures detected before any canvas
// is allocated or file is opened. Use errors.Is to classify; file-system
// errors from persisting artifacts propagate unmodified.
var (
	// ErrInvalidTargetType reports a target type outside
	// {A, B, C, AB, AC, BC, ABC}.
	ErrInvalidTargetType = errors.New("fixation: invalid target type")

	// ErrInvalidOrientation reports a conversion called with an
	// unrecognized axis selector.
	ErrInvalidOrientation = errors.New("fixation: invalid orientation")

	// ErrColorConflict reports two active components whose colors would
	// make them visually indistinguishable.
	ErrColorConflict = errors.New("fixation: color conflict")

	// ErrInvalidGeometry reports a non-positive screen dimension,
	// viewing distance, or component size.
	ErrInvalidGeometry = errors.New("fixation: invalid geometry")
)

// ColorConflictError describes a pair of active components that share an
// indistinguishable color. It unwraps to ErrColorConflict.
type ColorConflictError struct {
	First, Second           string // component names, e.g. "center", "outer"
	FirstColor, SecondColor Color
}

func (e *ColorConflictError) Error() string {
	return fmt.Sprintf("fixation: color conflict: %s %s and %s %s must differ",
		e.First, e.FirstColor, e.Second, e.SecondColor)
}

func (e *ColorConflictError) Unwrap() error { return ErrColorConflict }
