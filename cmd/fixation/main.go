// Command fixation generates fixation-target stimuli for vision-science
// experiments: a PNG and an SVG per invocation, sized in degrees of
// visual angle for a specific screen and viewing distance.
//
// Examples:
//
//	# Generate from a JSON config file
//	fixation -json my_config.json -output output/
//
//	# Generate a specific target type with explicit screen parameters
//	fixation -output output/ -target-type AB -screen-width-mm 476.64 \
//	  -screen-height-mm 268.11 -screen-width-px 1920 -screen-height-px 1080 \
//	  -viewing-distance-mm 930
//
//	# Regenerate whenever the config file changes
//	fixation -json my_config.json -output output/ -watch
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/fsnotify/fsnotify"

	"github.com/vistools/fixation"
)

func main() {
	var (
		jsonPath    = flag.String("json", "", "path to JSON configuration file")
		output      = flag.String("output", "", "output directory for generated files (required)")
		filename    = flag.String("filename", "fixation", "base filename without extension; the target type is appended")
		noAntialias = flag.Bool("no-antialias", false, "disable 2x supersampling anti-aliasing for the PNG")
		noShow      = flag.Bool("no-show", false, "don't display the generated target")
		watch       = flag.Bool("watch", false, "regenerate whenever the JSON config file changes (implies -no-show)")
		saveConfig  = flag.String("save-config", "", "write the effective configuration to this path")
		verbose     = flag.Bool("v", false, "log resolved sizes and written paths")

		screenWidthMM  = flag.Float64("screen-width-mm", 0, "screen width in millimeters")
		screenHeightMM = flag.Float64("screen-height-mm", 0, "screen height in millimeters")
		screenWidthPx  = flag.Int("screen-width-px", 0, "screen width in pixels")
		screenHeightPx = flag.Int("screen-height-px", 0, "screen height in pixels")
		distanceMM     = flag.Float64("viewing-distance-mm", 0, "viewing distance in millimeters")

		targetType = flag.String("target-type", "", "target type: A, B, C, AB, AC, BC, or ABC")
		centerDiam = flag.Float64("center-diameter", 0, "center dot diameter in degrees")
		outerDiam  = flag.Float64("outer-diameter", 0, "outer circle diameter in degrees")
		crossWidth = flag.Float64("cross-width", 0, "cross line width in degrees")
		bgDiam     = flag.Float64("background-diameter", 0, "background circle diameter in degrees")
	)
	flag.Parse()

	if *output == "" {
		fmt.Fprintln(os.Stderr, "fixation: -output is required")
		flag.Usage()
		os.Exit(2)
	}
	if *watch && *jsonPath == "" {
		fmt.Fprintln(os.Stderr, "fixation: -watch requires -json")
		os.Exit(2)
	}
	if *verbose {
		fixation.SetLogger(slog.Default())
	}

	cfg := fixation.DefaultConfig()
	if *jsonPath != "" {
		loaded, err := fixation.LoadConfig(*jsonPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	// Command-line flags override config-file values.
	override := func(cfg *fixation.Config) {
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "screen-width-mm":
				cfg.ScreenWidthMM = *screenWidthMM
			case "screen-height-mm":
				cfg.ScreenHeightMM = *screenHeightMM
			case "screen-width-px":
				cfg.ScreenWidthPx = *screenWidthPx
			case "screen-height-px":
				cfg.ScreenHeightPx = *screenHeightPx
			case "viewing-distance-mm":
				cfg.ViewingDistanceMM = *distanceMM
			case "target-type":
				cfg.TargetType = *targetType
			case "center-diameter":
				cfg.CenterDiameterInDegrees = *centerDiam
			case "outer-diameter":
				cfg.OuterDiameterInDegrees = *outerDiam
			case "cross-width":
				cfg.CrossWidthInDegrees = *crossWidth
			case "background-diameter":
				cfg.BackgroundDiameterInDegrees = *bgDiam
			}
		})
	}
	override(&cfg)

	if *jsonPath == "" {
		missing := missingScreenFlags(cfg)
		if len(missing) > 0 {
			fmt.Fprintf(os.Stderr, "fixation: the following flags are required when not using -json: %v\n", missing)
			os.Exit(2)
		}
	}

	if *saveConfig != "" {
		if err := fixation.SaveConfig(cfg, *saveConfig); err != nil {
			log.Fatalf("saving config: %v", err)
		}
	}

	opts := []fixation.Option{fixation.WithAntialias(!*noAntialias)}
	if !*noShow && !*watch {
		opts = append(opts, fixation.WithDisplayer(&previewDisplayer{}))
	}

	generate := func(cfg fixation.Config) error {
		gen, err := fixation.NewGenerator(cfg.Geometry(), opts...)
		if err != nil {
			return err
		}
		res, err := gen.Generate(cfg.TargetSpec(), *output, *filename)
		if err != nil {
			return err
		}
		fmt.Printf("saved %s and %s\n", res.PNGPath, res.SVGPath)
		return nil
	}

	if err := generate(cfg); err != nil {
		log.Fatal(err)
	}

	if *watch {
		if err := watchConfig(*jsonPath, override, generate); err != nil {
			log.Fatal(err)
		}
	}
}

// missingScreenFlags lists the screen parameters still unset, mirroring
// the required-parameter check used when no config file is given.
func missingScreenFlags(cfg fixation.Config) []string {
	var missing []string
	if cfg.ScreenWidthMM == 0 {
		missing = append(missing, "-screen-width-mm")
	}
	if cfg.ScreenHeightMM == 0 {
		missing = append(missing, "-screen-height-mm")
	}
	if cfg.ScreenWidthPx == 0 {
		missing = append(missing, "-screen-width-px")
	}
	if cfg.ScreenHeightPx == 0 {
		missing = append(missing, "-screen-height-px")
	}
	if cfg.ViewingDistanceMM == 0 {
		missing = append(missing, "-viewing-distance-mm")
	}
	return missing
}

// watchConfig regenerates the target each time the config file is
// rewritten. Editors often replace files on save, so Rename/Remove
// events re-add the watch path instead of terminating.
func watchConfig(path string, override func(*fixation.Config), generate func(fixation.Config) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}
	log.Printf("watching %s", path)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				if event.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
					// Atomic save: the watched inode is gone.
					if err := watcher.Add(path); err != nil {
						return err
					}
				}
				continue
			}
			cfg, err := fixation.LoadConfig(path)
			if err != nil {
				log.Printf("reloading config: %v", err)
				continue
			}
			override(&cfg)
			if err := generate(cfg); err != nil {
				if errors.Is(err, fixation.ErrColorConflict) ||
					errors.Is(err, fixation.ErrInvalidTargetType) ||
					errors.Is(err, fixation.ErrInvalidGeometry) {
					log.Printf("config invalid: %v", err)
					continue
				}
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}
