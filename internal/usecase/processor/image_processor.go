package processor

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"image-resizer/internal/domain"
	"image-resizer/internal/usecase/processor/operations"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type ImageResizer struct {
	resizer   *operations.Resizer
	maxPixels int64
}

func NewImageResizer(maxPixels int64) *ImageResizer {
	if maxPixels <= 0 {
		maxPixels = domain.DefaultMaxPixels
	}

	return &ImageResizer{
		resizer:   operations.NewResizer(domain.MaxDimension),
		maxPixels: maxPixels,
	}
}

// Process turns the source bytes stored under key into the resized object.
// Keys that already carry the resized prefix are skipped without decoding.
func (p *ImageResizer) Process(key string, data []byte) (domain.Result, error) {
	if domain.IsResizedKey(key) {
		return domain.Skipped(), nil
	}

	// An unknown signature and an unreadable header are both unidentified.
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return domain.Result{}, fmt.Errorf("%w: %s: %w", domain.ErrUnidentifiedFormat, key, err)
	}

	if pixels := int64(cfg.Width) * int64(cfg.Height); pixels > p.maxPixels {
		return domain.Result{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", domain.ErrResourceExhaustion, cfg.Width, cfg.Height, p.maxPixels)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to decode image: %w", err)
	}

	format := domain.FormatFromDecoder(name)

	mode := operations.ColorModeOf(img)
	if !mode.PassThrough() {
		img = operations.ToRGB(img)
		mode = domain.ModeRGB
	}

	resized, err := p.resizer.Process(img, mode)
	if err != nil {
		return domain.Result{}, fmt.Errorf("failed to resize image: %w", err)
	}

	policy := operations.PolicyFor(format)
	encoded, err := policy.Encode(resized)
	if err != nil {
		return domain.Result{}, err
	}

	bounds := resized.Bounds()
	return domain.Produced(&domain.OutputObject{
		Key:          DestinationKey(key, policy.Output),
		Data:         encoded,
		Format:       policy.Output,
		SourceFormat: format,
		ContentType:  policy.Output.ContentType(),
		Width:        bounds.Dx(),
		Height:       bounds.Dy(),
	}), nil
}
