package fixation

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the persisted, flat JSON form of a screen geometry plus a
// target specification. Field names match the configuration files the
// tool has always consumed; colors are 4-element [r, g, b, a] arrays.
// Load and save are pass-through serialization; interpretation happens
// in Geometry and TargetSpec.
type Config struct {
	ScreenWidthMM     float64 `json:"screen_width_mm"`
	ScreenHeightMM    float64 `json:"screen_height_mm"`
	ScreenWidthPx     int     `json:"screen_width_px"`
	ScreenHeightPx    int     `json:"screen_height_px"`
	ViewingDistanceMM float64 `json:"viewing_distance_mm"`

	TargetType              string  `json:"target_type"`
	CenterDiameterInDegrees float64 `json:"center_diameter_in_degrees"`
	OuterDiameterInDegrees  float64 `json:"outer_diameter_in_degrees"`
	CrossWidthInDegrees     float64 `json:"cross_width_in_degrees"`

	CenterColor Color `json:"center_color"`
	OuterColor  Color `json:"outer_color"`
	CrossColor  Color `json:"cross_color"`

	BackgroundDiameterInDegrees float64 `json:"background_diameter_in_degrees,omitempty"`
	BackgroundColor             *Color  `json:"background_color,omitempty"`
}

// DefaultConfig returns a config matching DefaultTargetSpec with the
// screen fields zeroed; callers fill those in for their display.
func DefaultConfig() Config {
	spec := DefaultTargetSpec()
	return Config{
		TargetType:              string(spec.Type),
		CenterDiameterInDegrees: spec.CenterDiameterDeg,
		OuterDiameterInDegrees:  spec.OuterDiameterDeg,
		CrossWidthInDegrees:     spec.CrossWidthDeg,
		CenterColor:             spec.CenterColor,
		OuterColor:              spec.OuterColor,
		CrossColor:              spec.CrossColor,
	}
}

// LoadConfig reads a JSON configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("fixation: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes a JSON configuration file, creating parent
// directories as needed.
func SaveConfig(cfg Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("fixation: encoding config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Geometry extracts the screen geometry fields.
func (c Config) Geometry() ScreenGeometry {
	return ScreenGeometry{
		WidthMM:    c.ScreenWidthMM,
		HeightMM:   c.ScreenHeightMM,
		WidthPx:    c.ScreenWidthPx,
		HeightPx:   c.ScreenHeightPx,
		DistanceMM: c.ViewingDistanceMM,
	}
}

// TargetSpec extracts the target specification fields. The result is
// not yet validated; the generator validates at its boundary.
func (c Config) TargetSpec() TargetSpec {
	return TargetSpec{
		Type:                  TargetType(c.TargetType),
		CenterDiameterDeg:     c.CenterDiameterInDegrees,
		OuterDiameterDeg:      c.OuterDiameterInDegrees,
		CrossWidthDeg:         c.CrossWidthInDegrees,
		CenterColor:           c.CenterColor,
		OuterColor:            c.OuterColor,
		CrossColor:            c.CrossColor,
		BackgroundDiameterDeg: c.BackgroundDiameterInDegrees,
		BackgroundColor:       c.BackgroundColor,
	}
}
