package operations

import (
	"fmt"
	"image"
	"math"

	"image-resizer/internal/domain"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

type Resizer struct {
	bound int
}

func NewResizer(bound int) *Resizer {
	return &Resizer{bound: bound}
}

// Fit scales width and height by min(bound/width, bound/height) and floors the
// result. Images smaller than the bound are scaled up.
func (r *Resizer) Fit(width, height int) (int, int) {
	scale := math.Min(float64(r.bound)/float64(width), float64(r.bound)/float64(height))
	return int(float64(width) * scale), int(float64(height) * scale)
}

// Process resizes img into the bounding box using a Lanczos filter. Images in
// single-channel mode come back single-channel.
func (r *Resizer) Process(img image.Image, mode domain.ColorMode) (image.Image, error) {
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("invalid source dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}

	width, height := r.Fit(bounds.Dx(), bounds.Dy())
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("height and width must be > 0, got %dx%d", width, height)
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)

	if mode == domain.ModeL {
		gray := image.NewGray(resized.Bounds())
		xdraw.Draw(gray, gray.Bounds(), resized, image.Point{}, xdraw.Src)
		return gray, nil
	}

	return resized, nil
}
