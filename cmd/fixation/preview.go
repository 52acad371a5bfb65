package main

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vistools/fixation"
)

// previewBackdrop is the mid-gray the window is cleared with.
var previewBackdrop = color.RGBA{R: 128, G: 128, B: 128, A: 255}

// previewDisplayer shows a generated target in a window. Targets are a
// few dozen pixels across, so the image is integer-upscaled until it is
// comfortably visible. Close the window or press Escape to continue.
type previewDisplayer struct{}

var _ fixation.Displayer = (*previewDisplayer)(nil)

// minPreviewSize is the smallest window edge the preview upscales to.
const minPreviewSize = 256

func (*previewDisplayer) Display(img image.Image, title string) error {
	b := img.Bounds()
	scale := 1
	for b.Dx()*scale < minPreviewSize && scale < 32 {
		scale *= 2
	}

	g := &previewGame{
		img:   ebiten.NewImageFromImage(img),
		scale: scale,
	}
	ebiten.SetWindowSize(b.Dx()*scale, b.Dy()*scale)
	ebiten.SetWindowTitle(title)

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

type previewGame struct {
	img   *ebiten.Image
	scale int
}

func (g *previewGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	// Mid-gray backdrop so both light and dark components read against
	// the transparent canvas.
	screen.Fill(previewBackdrop)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	// Nearest-neighbor keeps the per-pixel structure inspectable.
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(g.img, op)
}

func (g *previewGame) Layout(_, _ int) (int, int) {
	b := g.img.Bounds()
	return b.Dx() * g.scale, b.Dy() * g.scale
}
