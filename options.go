package fixation

// Option configures a Generator during creation.
//
// Example:
//
//	// Aliased output, progress reported through an observer
//	gen, err := fixation.NewGenerator(geom,
//		fixation.WithAntialias(false),
//		fixation.WithObserver(myObserver),
//	)
type Option func(*generatorOptions)

// generatorOptions holds optional configuration for Generator creation.
type generatorOptions struct {
	antialias bool
	observer  Observer
	displayer Displayer
}

// defaultGeneratorOptions returns the default generator options:
// supersampled anti-aliasing on, progress logged through the package
// logger, no display.
func defaultGeneratorOptions() generatorOptions {
	return generatorOptions{
		antialias: true,
		observer:  logObserver{},
	}
}

// WithAntialias enables or disables supersampled anti-aliasing for the
// raster output. The vector output is resolution-independent and
// unaffected. Default: enabled.
func WithAntialias(enabled bool) Option {
	return func(o *generatorOptions) {
		o.antialias = enabled
	}
}

// WithObserver sets the progress observer. Pass nil to disable progress
// reporting entirely (the default observer logs through the package
// logger).
func WithObserver(obs Observer) Option {
	return func(o *generatorOptions) {
		o.observer = obs
	}
}

// WithDisplayer sets the displayer used to show each generated target
// after both artifacts are written.
func WithDisplayer(d Displayer) Option {
	return func(o *generatorOptions) {
		o.displayer = d
	}
}
