package raster

// Mask is an 8-bit alpha mask for compositing operations. Values range
// from 0 (fully transparent) to 255 (fully opaque). A new mask is all
// zero.
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y), 0 outside the bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// set writes a mask value, ignoring out-of-bounds coordinates.
func (m *Mask) set(x, y int, v uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = v
}

// FillDisc sets the disc of the given radius around (cx, cy) to fully
// opaque, with the same inclusive boundary as Pixmap.FillDisc.
func (m *Mask) FillDisc(cx, cy, r int) {
	limit := r*r + r
	for y := cy - r; y <= cy+r; y++ {
		dy := y - cy
		for x := cx - r; x <= cx+r; x++ {
			dx := x - cx
			if dx*dx+dy*dy <= limit {
				m.set(x, y, 255)
			}
		}
	}
}

// FillRect sets the axis-aligned rectangle [x0,x1] x [y0,y1] (inclusive)
// to fully opaque.
func (m *Mask) FillRect(x0, y0, x1, y1 int) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			m.set(x, y, 255)
		}
	}
}

// Multiply intersects this mask with other in place:
// m = m * other / 255. Masks must have identical dimensions; differing
// regions beyond other's bounds become zero.
func (m *Mask) Multiply(other *Mask) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.width + x
			m.data[i] = uint8((uint32(m.data[i])*uint32(other.At(x, y)) + 127) / 255)
		}
	}
}
