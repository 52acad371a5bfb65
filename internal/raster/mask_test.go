package raster

import "testing"

func TestMaskFillRect(t *testing.T) {
	m := NewMask(6, 6)
	m.FillRect(1, 2, 4, 3)

	if m.At(1, 2) != 255 || m.At(4, 3) != 255 {
		t.Error("rect corners not set")
	}
	if m.At(0, 2) != 0 || m.At(5, 3) != 0 || m.At(1, 1) != 0 || m.At(4, 4) != 0 {
		t.Error("pixels outside rect set")
	}
}

func TestMaskFillRectClamps(t *testing.T) {
	m := NewMask(4, 4)
	m.FillRect(-3, -3, 6, 6) // exceeds bounds on all sides
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if m.At(x, y) != 255 {
				t.Fatalf("pixel (%d,%d) = %d, want 255", x, y, m.At(x, y))
			}
		}
	}
}

func TestMaskMultiply(t *testing.T) {
	bar := NewMask(9, 9)
	bar.FillRect(0, 3, 8, 5) // horizontal bar through the middle

	disc := NewMask(9, 9)
	disc.FillDisc(4, 4, 2)

	bar.Multiply(disc)

	// Inside both: kept.
	if bar.At(4, 4) != 255 {
		t.Errorf("At(4,4) = %d, want 255", bar.At(4, 4))
	}
	// Bar pixels outside the disc: cleared.
	if bar.At(0, 4) != 0 {
		t.Errorf("At(0,4) = %d, want 0", bar.At(0, 4))
	}
	if bar.At(8, 3) != 0 {
		t.Errorf("At(8,3) = %d, want 0", bar.At(8, 3))
	}
	// Disc pixels outside the bar were never in the mask.
	if bar.At(4, 2) != 0 {
		t.Errorf("At(4,2) = %d, want 0", bar.At(4, 2))
	}
}

func TestMaskMultiplyScales(t *testing.T) {
	a := NewMask(1, 1)
	a.set(0, 0, 128)
	b := NewMask(1, 1)
	b.set(0, 0, 128)

	a.Multiply(b)
	if got := a.At(0, 0); got != 64 {
		t.Errorf("128*128/255 = %d, want 64", got)
	}
}
