// Package fixation generates fixation-target stimuli for vision-science
// experiments.
//
// # Overview
//
// A fixation target is a small geometric marker (center dot, outer
// circle, cross, or a combination of the three) that participants are
// instructed to look at during an experiment. Component sizes are given
// in degrees of visual angle and converted to pixels for a specific
// physical screen and viewing distance, following the target shapes
// described by Thaler et al. (2013).
//
// # Quick Start
//
//	import "github.com/vistools/fixation"
//
//	geom := fixation.ScreenGeometry{
//		WidthMM:    476.64,
//		HeightMM:   268.11,
//		WidthPx:    1920,
//		HeightPx:   1080,
//		DistanceMM: 930,
//	}
//
//	gen, err := fixation.NewGenerator(geom)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	spec := fixation.DefaultTargetSpec()
//	res, err := gen.Generate(spec, "output", "fixation")
//	// res.PNGPath and res.SVGPath now hold the written artifacts.
//
// # Architecture
//
// The package is organized into:
//   - Public API: ScreenGeometry, TargetSpec, Converter, Layout, Generator
//   - Internal: raster (pixel compositing), svg (vector document writer)
//
// Validation, unit conversion, and layout planning resolve a single
// scene description that both the raster (PNG) and vector (SVG) encoders
// consume, so the two output formats cannot drift apart.
//
// # Coordinate System
//
// Uses standard raster coordinates: origin (0,0) at top-left, X
// increases right, Y increases down. The canvas is square and the target
// is centered at floor(size/2) on both axes.
package fixation

// Version information
const (
	// Version is the current version of the library
	Version = "1.2.0"
)
