package fixation

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
)

// Generator turns target specifications into persisted raster and
// vector artifacts for one screen. Generators hold no mutable state
// between calls; distinct instances may run concurrently as long as they
// write to distinct output paths.
type Generator struct {
	conv      *Converter
	antialias bool
	observer  Observer
	displayer Displayer
}

// Result reports one completed generation: the resolved layout and the
// paths of the two written artifacts.
type Result struct {
	Layout  *Layout
	PNGPath string
	SVGPath string
}

// NewGenerator creates a generator for the given screen geometry.
func NewGenerator(geom ScreenGeometry, opts ...Option) (*Generator, error) {
	conv, err := NewConverter(geom)
	if err != nil {
		return nil, err
	}

	options := defaultGeneratorOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Generator{
		conv:      conv,
		antialias: options.antialias,
		observer:  options.observer,
		displayer: options.displayer,
	}, nil
}

// Generate validates the spec, resolves its pixel layout, renders the
// raster and vector artifacts, and writes them as
// <stem>_<type-lowercase>.png and .svg under outDir, creating the
// directory if absent. Existing files are overwritten.
//
// All validation failures surface before any canvas is allocated or
// file is opened, so a failed call never leaves partial output. Both
// artifacts are fully composed in memory before the first write.
func (g *Generator) Generate(spec TargetSpec, outDir, stem string) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	layout, err := PlanLayout(&spec, g.conv)
	if err != nil {
		return nil, err
	}
	if g.observer != nil {
		g.observer.LayoutResolved(&spec, layout)
	}

	scene := layout.Scene(&spec)

	img := RenderRaster(scene, g.antialias)
	var pngBuf bytes.Buffer
	if err := png.Encode(&pngBuf, img); err != nil {
		return nil, fmt.Errorf("fixation: encoding png: %w", err)
	}

	svgDoc, err := RenderSVG(scene)
	if err != nil {
		return nil, fmt.Errorf("fixation: encoding svg: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	base := fmt.Sprintf("%s_%s", stem, strings.ToLower(string(spec.Type)))
	res := &Result{
		Layout:  layout,
		PNGPath: filepath.Join(outDir, base+".png"),
		SVGPath: filepath.Join(outDir, base+".svg"),
	}

	if err := os.WriteFile(res.PNGPath, pngBuf.Bytes(), 0o644); err != nil {
		return nil, err
	}
	if g.observer != nil {
		g.observer.ArtifactWritten(res.PNGPath)
	}

	if err := os.WriteFile(res.SVGPath, svgDoc, 0o644); err != nil {
		return nil, err
	}
	if g.observer != nil {
		g.observer.ArtifactWritten(res.SVGPath)
	}

	if g.displayer != nil {
		if err := g.displayer.Display(img, base); err != nil {
			return nil, fmt.Errorf("fixation: displaying target: %w", err)
		}
	}

	return res, nil
}
