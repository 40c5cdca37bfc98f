package images

import (
	"image"
	"os"

	"github.com/pkg/errors"
)

// LoadImageFile reads and decodes a single image file.
//
// Arguments:
//   - path: Path to the image file.
//
// Returns:
//   - *Image: The decoded image.
//   - error: Error if the file cannot be read or decoded.
func LoadImageFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image file")
	}

	img, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}

	return img, nil
}

// SaveImageFile encodes img and writes it to path, truncating any existing file.
//
// Arguments:
//   - path: Destination path. The parent directory must already exist.
//   - img: The image to encode.
//   - format: The output format.
//
// Returns:
//   - error: Error if the file cannot be created, encoded, or closed.
func SaveImageFile(path string, img image.Image, format ImageFormat) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create image file")
	}

	if err := Encode(f, img, format); err != nil {
		f.Close()
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return errors.Wrapf(f.Close(), "failed to close %s", path)
}
