package images

import (
	"github.com/pkg/errors"
)

// ImageFormat represents supported image formats
type ImageFormat string

// ImageFormat constants
const (
	// FormatPNG is the PNG image format.
	FormatPNG ImageFormat = "png"
	// FormatJPEG is the JPEG image format.
	FormatJPEG ImageFormat = "jpeg"
	// FormatGIF is the GIF image format.
	FormatGIF ImageFormat = "gif"
	// FormatBMP is the BMP image format.
	FormatBMP ImageFormat = "bmp"
	// FormatWebP is the WebP image format.
	FormatWebP ImageFormat = "webp"
)

// signature is a magic byte prefix identifying a format. A '?' in magic
// matches any byte.
type signature struct {
	format ImageFormat
	magic  string
}

var signatures = []signature{
	{FormatPNG, "\x89PNG\r\n\x1a\n"},
	{FormatJPEG, "\xff\xd8"},
	{FormatGIF, "GIF87a"},
	{FormatGIF, "GIF89a"},
	{FormatBMP, "BM????\x00\x00\x00\x00"},
	{FormatWebP, "RIFF????WEBPVP8"},
}

func (s signature) match(data []byte) bool {
	if len(data) < len(s.magic) {
		return false
	}
	for i := 0; i < len(s.magic); i++ {
		if s.magic[i] != '?' && s.magic[i] != data[i] {
			return false
		}
	}
	return true
}

// DetectFormat sniffs the leading bytes of an encoded image and returns its format.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - ImageFormat: The detected format.
//   - error: An error if data is empty or matches no known signature.
func DetectFormat(data []byte) (ImageFormat, error) {
	if len(data) == 0 {
		return "", errors.New("empty image data")
	}
	for _, sig := range signatures {
		if sig.match(data) {
			return sig.format, nil
		}
	}
	head := data[:min(len(data), 8)]
	return "", errors.Errorf("unsupported image format (header % x)", head)
}
