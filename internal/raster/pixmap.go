// Package raster provides the pixel-compositing primitives the raster
// encoder draws with: a non-premultiplied RGBA pixmap, 8-bit alpha
// masks, and an area-averaging downsampler.
package raster

import (
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer in non-premultiplied
// RGBA format, 4 bytes per pixel. A new pixmap is fully transparent.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int { return p.width }

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int { return p.height }

// SetPixel overwrites a single pixel, alpha channel included. Writes
// outside the bounds are ignored.
func (p *Pixmap) SetPixel(x, y int, c color.NRGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel. Reads outside the
// bounds return transparent.
func (p *Pixmap) GetPixel(x, y int) color.NRGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.NRGBA{}
	}
	i := (y*p.width + x) * 4
	return color.NRGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// FillDisc overwrites every pixel of the disc of the given radius around
// (cx, cy) with c. The disc boundary is inclusive: a pixel belongs to
// the disc when its squared center distance is at most r*r + r, which
// matches a disc spanning 2r+1 pixels across.
func (p *Pixmap) FillDisc(cx, cy, r int, c color.NRGBA) {
	limit := r*r + r
	for y := cy - r; y <= cy+r; y++ {
		dy := y - cy
		for x := cx - r; x <= cx+r; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= limit {
				p.SetPixel(x, y, c)
			}
		}
	}
}

// CompositeMask blends the solid color c onto the pixmap through the
// mask, channel-wise on straight (non-premultiplied) values:
//
//	out = c*m/255 + dst*(255-m)/255
//
// A fully opaque mask value replaces the pixel, alpha included; a zero
// value leaves it untouched.
func (p *Pixmap) CompositeMask(m *Mask, c color.NRGBA) {
	w, h := p.width, p.height
	if m.width < w {
		w = m.width
	}
	if m.height < h {
		h = m.height
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint32(m.data[y*m.width+x])
			if v == 0 {
				continue
			}
			i := (y*p.width + x) * 4
			inv := 255 - v
			p.data[i+0] = uint8((uint32(c.R)*v + uint32(p.data[i+0])*inv + 127) / 255)
			p.data[i+1] = uint8((uint32(c.G)*v + uint32(p.data[i+1])*inv + 127) / 255)
			p.data[i+2] = uint8((uint32(c.B)*v + uint32(p.data[i+2])*inv + 127) / 255)
			p.data[i+3] = uint8((uint32(c.A)*v + uint32(p.data[i+3])*inv + 127) / 255)
		}
	}
}

// ToImage converts the pixmap to an image.NRGBA sharing no state with
// the pixmap.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}
