package fixation

import "log/slog"

// Observer receives structured progress information from a Generator:
// the resolved layout before rendering and each artifact path after it
// is written. It replaces ad-hoc printing so callers decide what, if
// anything, to report.
type Observer interface {
	// LayoutResolved is called once per generation, after validation and
	// planning and before any rendering.
	LayoutResolved(spec *TargetSpec, layout *Layout)

	// ArtifactWritten is called after each output file is persisted.
	ArtifactWritten(path string)
}

// logObserver reports progress through the package logger.
type logObserver struct{}

func (logObserver) LayoutResolved(spec *TargetSpec, layout *Layout) {
	attrs := []any{
		slog.String("type", string(layout.Type)),
		slog.Int("canvas_px", layout.CanvasSize),
	}
	if layout.Type.HasCenter() {
		attrs = append(attrs, slog.Int("center_px", layout.CenterDiameterPx))
	}
	if layout.Type.HasOuter() {
		attrs = append(attrs, slog.Int("outer_px", layout.OuterDiameterPx))
	}
	if layout.Type.HasCross() {
		attrs = append(attrs, slog.Int("cross_px", layout.CrossWidthPx))
	}
	if layout.BackgroundDiameterPx > 0 {
		attrs = append(attrs, slog.Int("background_px", layout.BackgroundDiameterPx))
	}
	Logger().Debug("layout resolved", attrs...)
}

func (logObserver) ArtifactWritten(path string) {
	Logger().Info("artifact written", slog.String("path", path))
}
