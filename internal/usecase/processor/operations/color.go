package operations

import (
	"image"
	"image/color"

	"image-resizer/internal/domain"
)

type opaquer interface {
	Opaque() bool
}

// ColorModeOf classifies the decoded pixel representation of img.
func ColorModeOf(img image.Image) domain.ColorMode {
	switch m := img.(type) {
	case *image.YCbCr:
		return domain.ModeRGB
	case *image.Gray:
		return domain.ModeL
	case *image.Gray16:
		return domain.ModeI16
	case *image.Paletted:
		return domain.ModeP
	case *image.CMYK:
		return domain.ModeCMYK
	case opaquer:
		if m.Opaque() {
			return domain.ModeRGB
		}
		return domain.ModeRGBA
	default:
		return domain.ModeRGBA
	}
}

// ToRGB converts img to opaque RGB. Alpha is dropped, not composited: a
// transparent pixel keeps its color channels and becomes fully opaque.
func ToRGB(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			dst.SetRGBA(x-bounds.Min.X, y-bounds.Min.Y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
		}
	}

	return dst
}
