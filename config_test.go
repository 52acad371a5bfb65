package fixation

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestConfigRoundTrip(t *testing.T) {
	bg := RGBA(128, 128, 128, 200)
	cfg := Config{
		ScreenWidthMM:               476.64,
		ScreenHeightMM:              268.11,
		ScreenWidthPx:               1920,
		ScreenHeightPx:              1080,
		ViewingDistanceMM:           930,
		TargetType:                  "ABC",
		CenterDiameterInDegrees:     0.1,
		OuterDiameterInDegrees:      0.6,
		CrossWidthInDegrees:         0.15,
		CenterColor:                 Black,
		OuterColor:                  Black,
		CrossColor:                  White,
		BackgroundDiameterInDegrees: 1.2,
		BackgroundColor:             &bg,
	}

	path := filepath.Join(t.TempDir(), "configs", "target.json")
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig() error = %v", err)
	}
	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round trip mismatch:\nsaved  %+v\nloaded %+v", cfg, loaded)
	}
}

func TestConfigColorFormat(t *testing.T) {
	// Colors persist as flat 4-element arrays, the format experiment
	// scripts already produce.
	path := filepath.Join(t.TempDir(), "c.json")
	cfg := DefaultConfig()
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\"cross_color\": [") {
		t.Errorf("cross_color not serialized as an array:\n%s", data)
	}
}

func TestConfigFieldNames(t *testing.T) {
	raw := `{
		"screen_width_mm": 476.64,
		"screen_height_mm": 268.11,
		"screen_width_px": 1920,
		"screen_height_px": 1080,
		"viewing_distance_mm": 930,
		"target_type": "bc",
		"center_diameter_in_degrees": 0.1,
		"outer_diameter_in_degrees": 0.6,
		"cross_width_in_degrees": 0.15,
		"center_color": [0, 0, 0, 255],
		"outer_color": [0, 0, 0, 255],
		"cross_color": [255, 255, 255, 255]
	}`
	path := filepath.Join(t.TempDir(), "c.json")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	geom := cfg.Geometry()
	if geom != testGeometry {
		t.Errorf("Geometry() = %+v, want %+v", geom, testGeometry)
	}

	spec := cfg.TargetSpec()
	if err := spec.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if spec.Type != TypeBC {
		t.Errorf("Type = %q, want BC", spec.Type)
	}
	if spec.CrossColor != White {
		t.Errorf("CrossColor = %v, want white", spec.CrossColor)
	}
	if spec.BackgroundColor != nil {
		t.Errorf("BackgroundColor = %v, want nil", spec.BackgroundColor)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadConfig() on a missing file succeeded")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig() on malformed JSON succeeded")
	}
}
