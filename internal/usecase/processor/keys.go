package processor

import (
	"strings"

	"image-resizer/internal/domain"
)

// DestinationKey derives the key the resized object is stored under. The
// source extension is kept, lower-cased, unless the output is JPEG and the
// extension is not a JPEG one.
func DestinationKey(key string, output domain.ImageFormat) string {
	root, ext := splitExt(key)
	ext = strings.ToLower(ext)

	if output == domain.FormatJPEG && ext != ".jpg" && ext != ".jpeg" {
		ext = ".jpg"
	}

	return domain.ResizedPrefix + root + ext
}

// splitExt splits off the extension of the last path element. Leading dots of
// that element do not start an extension, so ".env" has none.
func splitExt(key string) (string, string) {
	sep := strings.LastIndex(key, "/")
	dot := strings.LastIndex(key, ".")
	if dot <= sep {
		return key, ""
	}

	for i := sep + 1; i < dot; i++ {
		if key[i] != '.' {
			return key[:dot], key[dot:]
		}
	}

	return key, ""
}
