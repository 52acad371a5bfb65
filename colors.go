package fixation

// validateColors enforces pairwise color distinctness between active
// components so that every requested shape remains visible:
//
//	AB:  center != outer (the dot would vanish into the circle)
//	AC:  center != cross
//	BC:  outer != cross
//	ABC: cross != outer and cross != center; center may equal outer
//	     because the cross separates them visually
//
// Single-component targets are unconstrained. Runs before any geometry
// or I/O so a conflict never produces a partial artifact.
func validateColors(s *TargetSpec) error {
	center := s.Type.HasCenter()
	outer := s.Type.HasOuter()
	cross := s.Type.HasCross()

	switch {
	case center && outer && !cross: // AB
		if s.CenterColor == s.OuterColor {
			return &ColorConflictError{
				First: "center", FirstColor: s.CenterColor,
				Second: "outer", SecondColor: s.OuterColor,
			}
		}
	case center && cross && !outer: // AC
		if s.CenterColor == s.CrossColor {
			return &ColorConflictError{
				First: "center", FirstColor: s.CenterColor,
				Second: "cross", SecondColor: s.CrossColor,
			}
		}
	case outer && cross && !center: // BC
		if s.OuterColor == s.CrossColor {
			return &ColorConflictError{
				First: "outer", FirstColor: s.OuterColor,
				Second: "cross", SecondColor: s.CrossColor,
			}
		}
	case center && outer && cross: // ABC
		if s.CrossColor == s.OuterColor {
			return &ColorConflictError{
				First: "cross", FirstColor: s.CrossColor,
				Second: "outer", SecondColor: s.OuterColor,
			}
		}
		if s.CrossColor == s.CenterColor {
			return &ColorConflictError{
				First: "cross", FirstColor: s.CrossColor,
				Second: "center", SecondColor: s.CenterColor,
			}
		}
	}
	return nil
}
