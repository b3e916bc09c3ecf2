package domain

import (
	"fmt"
	"net/url"
	"strings"
)

type ImageFormat string

const (
	FormatJPEG  ImageFormat = "jpeg"
	FormatPNG   ImageFormat = "png"
	FormatWebP  ImageFormat = "webp"
	FormatGIF   ImageFormat = "gif"
	FormatOther ImageFormat = "other"
)

// FormatFromDecoder maps the name reported by image.Decode to an ImageFormat.
// Decoders outside the four preserved formats (bmp, tiff, ...) report OTHER.
func FormatFromDecoder(name string) ImageFormat {
	switch ImageFormat(name) {
	case FormatJPEG, FormatPNG, FormatWebP, FormatGIF:
		return ImageFormat(name)
	default:
		return FormatOther
	}
}

func (f ImageFormat) ContentType() string {
	switch f {
	case FormatJPEG:
		return "image/jpeg"
	case FormatPNG:
		return "image/png"
	case FormatWebP:
		return "image/webp"
	case FormatGIF:
		return "image/gif"
	default:
		return "application/octet-stream"
	}
}

type ColorMode string

const (
	ModeRGB  ColorMode = "RGB"
	ModeL    ColorMode = "L"
	ModeRGBA ColorMode = "RGBA"
	ModeP    ColorMode = "P"
	ModeCMYK ColorMode = "CMYK"
	ModeI16  ColorMode = "I;16"
)

// PassThrough reports whether pixels in this mode are resized as they are.
func (m ColorMode) PassThrough() bool {
	return m == ModeRGB || m == ModeL
}

// SourceObject is the object a notification points at, with its key decoded.
type SourceObject struct {
	Bucket string
	Key    string
}

// NewSourceObject decodes a notification key: "+" is a space and %XX
// escapes are resolved.
func NewSourceObject(bucket, rawKey string) (SourceObject, error) {
	key, err := url.QueryUnescape(rawKey)
	if err != nil {
		return SourceObject{Bucket: bucket, Key: rawKey}, fmt.Errorf("failed to decode object key: %w", err)
	}
	return SourceObject{Bucket: bucket, Key: key}, nil
}

// Fail attaches the object to err.
func (o SourceObject) Fail(err error) *ProcessingError {
	return &ProcessingError{Bucket: o.Bucket, Key: o.Key, Err: err}
}

type OutputObject struct {
	Key          string
	Data         []byte
	Format       ImageFormat
	SourceFormat ImageFormat
	ContentType  string
	Width        int
	Height       int
}

type Outcome string

const (
	OutcomeSkipped  Outcome = "skipped"
	OutcomeProduced Outcome = "produced"
)

type Result struct {
	Outcome Outcome
	Output  *OutputObject
}

func Skipped() Result {
	return Result{Outcome: OutcomeSkipped}
}

func Produced(out *OutputObject) Result {
	return Result{Outcome: OutcomeProduced, Output: out}
}

const (
	ResizedPrefix    = "resized_"
	MaxDimension     = 1600
	DefaultQuality   = 85
	DefaultMaxPixels = 2 * 89478485
)

// IsResizedKey reports whether key names an object this service produced.
// Such objects are never processed again.
func IsResizedKey(key string) bool {
	return strings.HasPrefix(key, ResizedPrefix)
}
