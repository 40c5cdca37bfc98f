package images

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// JPEGQuality is the quality used when encoding JPEG output.
const JPEGQuality = 95

// Encode writes img to w in the given format. WebP output is lossless.
//
// Arguments:
//   - w: The destination writer.
//   - img: The image to encode.
//   - format: The output format.
//
// Returns:
//   - error: An error if the format is unsupported or encoding fails.
func Encode(w io.Writer, img image.Image, format ImageFormat) error {
	if img == nil {
		return errors.New("image is nil")
	}

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Lossless: true})
	default:
		return errors.Errorf("unsupported image format: %q", format)
	}

	return errors.Wrapf(err, "failed to encode %s image", format)
}
