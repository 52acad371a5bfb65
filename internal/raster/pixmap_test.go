package raster

import (
	"image/color"
	"testing"
)

var (
	opaqueRed = color.NRGBA{R: 255, A: 255}
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestNewPixmapTransparent(t *testing.T) {
	pm := NewPixmap(8, 8)
	if pm.Width() != 8 || pm.Height() != 8 {
		t.Fatalf("size = %dx%d, want 8x8", pm.Width(), pm.Height())
	}
	if got := pm.GetPixel(3, 3); got != (color.NRGBA{}) {
		t.Errorf("fresh pixmap pixel = %v, want transparent", got)
	}
}

func TestSetGetPixelBounds(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(1, 2, opaqueRed)
	if got := pm.GetPixel(1, 2); got != opaqueRed {
		t.Errorf("GetPixel(1,2) = %v, want %v", got, opaqueRed)
	}

	// Writes outside the bounds are dropped, reads return transparent.
	pm.SetPixel(-1, 0, opaqueRed)
	pm.SetPixel(4, 0, opaqueRed)
	if got := pm.GetPixel(-1, 0); got != (color.NRGBA{}) {
		t.Errorf("out-of-bounds read = %v, want transparent", got)
	}
}

func TestFillDiscExtent(t *testing.T) {
	pm := NewPixmap(11, 11)
	pm.FillDisc(5, 5, 3, white)

	// The disc spans 2r+1 pixels across its axes.
	for _, x := range []int{2, 5, 8} {
		if got := pm.GetPixel(x, 5).A; got != 255 {
			t.Errorf("pixel (%d,5) alpha = %d, want 255", x, got)
		}
	}
	if got := pm.GetPixel(1, 5).A; got != 0 {
		t.Errorf("pixel (1,5) alpha = %d, want 0", got)
	}
	if got := pm.GetPixel(9, 5).A; got != 0 {
		t.Errorf("pixel (9,5) alpha = %d, want 0", got)
	}
	// Far corner of the bounding square is outside the disc.
	if got := pm.GetPixel(8, 8).A; got != 0 {
		t.Errorf("pixel (8,8) alpha = %d, want 0", got)
	}
}

func TestFillDiscOverwritesAlpha(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.FillDisc(2, 2, 2, white)
	translucent := color.NRGBA{R: 10, G: 20, B: 30, A: 40}
	pm.FillDisc(2, 2, 1, translucent)

	if got := pm.GetPixel(2, 2); got != translucent {
		t.Errorf("center = %v, want %v (overwrite, not blend)", got, translucent)
	}
}

func TestCompositeMask(t *testing.T) {
	pm := NewPixmap(3, 1)
	pm.SetPixel(0, 0, white)
	pm.SetPixel(1, 0, white)
	pm.SetPixel(2, 0, white)

	m := NewMask(3, 1)
	m.set(0, 0, 0)
	m.set(1, 0, 255)
	m.set(2, 0, 128)

	pm.CompositeMask(m, opaqueRed)

	if got := pm.GetPixel(0, 0); got != white {
		t.Errorf("mask 0 pixel = %v, want untouched white", got)
	}
	if got := pm.GetPixel(1, 0); got != opaqueRed {
		t.Errorf("mask 255 pixel = %v, want %v", got, opaqueRed)
	}
	mid := pm.GetPixel(2, 0)
	if mid.R != 255 || mid.A != 255 {
		t.Errorf("mask 128 pixel = %v, want full red and alpha", mid)
	}
	if mid.G < 127 || mid.G > 128 {
		t.Errorf("mask 128 green = %d, want ~127", mid.G)
	}
}
