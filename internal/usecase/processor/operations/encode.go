package operations

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"image-resizer/internal/domain"

	"github.com/chai2010/webp"
)

// Policy holds the encode parameters chosen for a source format.
type Policy struct {
	Output           domain.ImageFormat
	Quality          int
	CompressionLevel png.CompressionLevel
	NumColors        int
}

var policies = map[domain.ImageFormat]Policy{
	domain.FormatJPEG: {Output: domain.FormatJPEG, Quality: domain.DefaultQuality},
	domain.FormatPNG:  {Output: domain.FormatPNG, CompressionLevel: png.BestCompression},
	domain.FormatWebP: {Output: domain.FormatWebP, Quality: domain.DefaultQuality},
	domain.FormatGIF:  {Output: domain.FormatGIF, NumColors: 256},
}

// Anything without its own entry is re-encoded as JPEG.
var fallbackPolicy = Policy{Output: domain.FormatJPEG, Quality: domain.DefaultQuality}

type encodeFunc func(w io.Writer, img image.Image, p Policy) error

var encoders = map[domain.ImageFormat]encodeFunc{
	domain.FormatJPEG: encodeJPEG,
	domain.FormatPNG:  encodePNG,
	domain.FormatWebP: encodeWebP,
	domain.FormatGIF:  encodeGIF,
}

func PolicyFor(format domain.ImageFormat) Policy {
	if p, ok := policies[format]; ok {
		return p
	}
	return fallbackPolicy
}

func (p Policy) Encode(img image.Image) ([]byte, error) {
	encode, ok := encoders[p.Output]
	if !ok {
		return nil, fmt.Errorf("no encoder for format %s", p.Output)
	}

	buf := new(bytes.Buffer)
	if err := encode(buf, img, p); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", p.Output, err)
	}

	return buf.Bytes(), nil
}

func encodeJPEG(w io.Writer, img image.Image, p Policy) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: p.Quality})
}

func encodePNG(w io.Writer, img image.Image, p Policy) error {
	enc := &png.Encoder{CompressionLevel: p.CompressionLevel}
	return enc.Encode(w, img)
}

func encodeWebP(w io.Writer, img image.Image, p Policy) error {
	return webp.Encode(w, img, &webp.Options{Quality: float32(p.Quality)})
}

func encodeGIF(w io.Writer, img image.Image, p Policy) error {
	return gif.Encode(w, img, &gif.Options{NumColors: p.NumColors, Drawer: draw.FloydSteinberg})
}
