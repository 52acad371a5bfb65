package fixation

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// Color represents an RGBA color with 8-bit channels, the format used
// for all target components. Alpha 255 is fully opaque.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// NRGBA converts the color to the standard library's non-premultiplied
// representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String formats the color as "(r, g, b, a)", the form used in
// configuration-error messages.
func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// MarshalJSON encodes the color as a 4-element array [r, g, b, a],
// matching the persisted configuration format.
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]uint8{c.R, c.G, c.B, c.A})
}

// UnmarshalJSON decodes a 4-element array [r, g, b, a].
func (c *Color) UnmarshalJSON(data []byte) error {
	var channels []int
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("fixation: invalid color %s: %w", data, err)
	}
	if len(channels) != 4 {
		return fmt.Errorf("fixation: invalid color %s: need 4 channels, got %d", data, len(channels))
	}
	for _, v := range channels {
		if v < 0 || v > 255 {
			return fmt.Errorf("fixation: invalid color %s: channel %d out of range 0-255", data, v)
		}
	}
	c.R, c.G, c.B, c.A = uint8(channels[0]), uint8(channels[1]), uint8(channels[2]), uint8(channels[3])
	return nil
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = RGBA(0, 0, 0, 0)
)
