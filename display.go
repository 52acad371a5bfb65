package fixation

import "image"

// Displayer shows a generated target on screen after it is saved.
// Display itself is outside this package's responsibility; cmd/fixation
// provides a windowed implementation. A nil Displayer on the generator
// means nothing is shown.
type Displayer interface {
	Display(img image.Image, title string) error
}
