// Package sample provides the training images the texture model learns from.
package sample

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"texca/pkg/grid"
)

// Load decodes the image at path into a grid. When maxSide is positive and the
// longer side of the image exceeds it, the image is downscaled preserving its
// aspect ratio.
func Load(path string, maxSide int) (*grid.Grid, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sample %q: %w", path, err)
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("load sample %q: empty image", path)
	}
	return grid.GridFromImage(Fit(img, maxSide)), nil
}

// Fit downscales img so neither side exceeds maxSide. Images that already fit,
// and a non-positive maxSide, are returned unchanged.
func Fit(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return img
	}
	if w >= h {
		h = max(1, h*maxSide/w)
		w = maxSide
	} else {
		w = max(1, w*maxSide/h)
		h = maxSide
	}
	return transform.Resize(img, w, h, transform.Linear)
}
