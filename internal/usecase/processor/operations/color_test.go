package operations

import (
	"image"
	"image/color"
	"testing"

	"image-resizer/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestColorModeOf(t *testing.T) {
	rect := image.Rect(0, 0, 2, 2)

	translucent := image.NewNRGBA(rect)
	translucent.SetNRGBA(0, 0, color.NRGBA{R: 1, A: 10})

	opaque := image.NewNRGBA(rect)
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 0xff
	}

	tests := []struct {
		name string
		img  image.Image
		want domain.ColorMode
	}{
		{name: "ycbcr", img: image.NewYCbCr(rect, image.YCbCrSubsampleRatio420), want: domain.ModeRGB},
		{name: "gray", img: image.NewGray(rect), want: domain.ModeL},
		{name: "gray16", img: image.NewGray16(rect), want: domain.ModeI16},
		{name: "paletted", img: image.NewPaletted(rect, color.Palette{color.Black}), want: domain.ModeP},
		{name: "cmyk", img: image.NewCMYK(rect), want: domain.ModeCMYK},
		{name: "translucent", img: translucent, want: domain.ModeRGBA},
		{name: "opaque nrgba", img: opaque, want: domain.ModeRGB},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mode := ColorModeOf(tc.img)
			assert.Equal(t, tc.want, mode)
		})
	}
}

func TestColorMode_PassThrough(t *testing.T) {
	assert.True(t, domain.ModeRGB.PassThrough())
	assert.True(t, domain.ModeL.PassThrough())

	for _, m := range []domain.ColorMode{domain.ModeRGBA, domain.ModeP, domain.ModeCMYK, domain.ModeI16} {
		assert.False(t, m.PassThrough(), m)
	}
}

func TestToRGB(t *testing.T) {
	src := image.NewNRGBA(image.Rect(5, 5, 7, 6))
	src.SetNRGBA(5, 5, color.NRGBA{R: 200, G: 100, B: 50, A: 0})
	src.SetNRGBA(6, 5, color.NRGBA{R: 10, G: 20, B: 30, A: 128})

	dst := ToRGB(src)

	assert.Equal(t, image.Rect(0, 0, 2, 1), dst.Bounds())
	assert.True(t, dst.Opaque())
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 50, A: 255}, dst.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, dst.RGBAAt(1, 0))
}
