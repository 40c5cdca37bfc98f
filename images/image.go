// Package images - decoding, resampling and encoding of raster images.
package images

import (
	"bytes"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// Image represents a decoded image with its source format, width, and height.
type Image struct {
	// The format the image was decoded from.
	Format ImageFormat `json:"format" yaml:"format"`
	// The decoded pixels.
	Pixels image.Image `json:"-" yaml:"-"`
	// The width of the image.
	Width int `json:"width" yaml:"width"`
	// The height of the image.
	Height int `json:"height" yaml:"height"`
}

// decoders maps each supported format to its decoder.
var decoders = map[ImageFormat]func(io.Reader) (image.Image, error){
	FormatPNG:  png.Decode,
	FormatJPEG: jpeg.Decode,
	FormatGIF:  gif.Decode,
	FormatBMP:  bmp.Decode,
	FormatWebP: webp.Decode,
}

// Decode detects the format of an encoded image and decodes it.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - *Image: The decoded image.
//   - error: An error if the format is unknown or the data fails to decode.
func Decode(data []byte) (*Image, error) {
	format, err := DetectFormat(data)
	if err != nil {
		return nil, err
	}

	decode, ok := decoders[format]
	if !ok {
		return nil, errors.Errorf("no decoder for image format: %s", format)
	}

	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s image", format)
	}

	bounds := img.Bounds()
	return &Image{
		Format: format,
		Pixels: img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}, nil
}
