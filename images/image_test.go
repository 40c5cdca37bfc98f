package images

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, format ImageFormat) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, getGradientImage(40, 30), format))
	return buf.Bytes()
}

// TestDecode checks that every supported format is sniffed and decoded
// without relying on the file extension.
func TestDecode(t *testing.T) {
	for _, format := range []ImageFormat{FormatPNG, FormatJPEG, FormatGIF, FormatBMP, FormatWebP} {
		t.Run(string(format), func(t *testing.T) {
			img, err := Decode(encodeTestImage(t, format))
			require.NoError(t, err)
			assert.Equal(t, format, img.Format)
			assert.Equal(t, 40, img.Width)
			assert.Equal(t, 30, img.Height)
			assert.Equal(t, 40, img.Pixels.Bounds().Dx())
			assert.Equal(t, 30, img.Pixels.Bounds().Dy())
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		message string
	}{
		{name: "empty", data: nil, message: "empty image data"},
		{name: "not an image", data: []byte("not a png"), message: "unsupported image format"},
		{name: "truncated png", data: []byte("\x89PNG\r\n\x1a\n\x00\x00"), message: "failed to decode png image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Decode(tt.data)
			require.Error(t, err)
			assert.Nil(t, img)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected ImageFormat
	}{
		{name: "png", data: []byte("\x89PNG\r\n\x1a\nrest"), expected: FormatPNG},
		{name: "jpeg", data: []byte("\xff\xd8\xff\xe0"), expected: FormatJPEG},
		{name: "gif87a", data: []byte("GIF87a..."), expected: FormatGIF},
		{name: "gif89a", data: []byte("GIF89a..."), expected: FormatGIF},
		{name: "bmp", data: []byte("BM\x36\x00\x0c\x00\x00\x00\x00\x00"), expected: FormatBMP},
		{name: "webp lossless", data: []byte("RIFF\x1a\x00\x00\x00WEBPVP8L"), expected: FormatWebP},
		{name: "webp lossy", data: []byte("RIFF\x1a\x00\x00\x00WEBPVP8 "), expected: FormatWebP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, err := DetectFormat(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, format)
		})
	}

	// A RIFF container that is not WebP.
	_, err := DetectFormat([]byte("RIFF\x1a\x00\x00\x00WAVEfmt "))
	assert.Error(t, err)
}

func TestEncodeErrors(t *testing.T) {
	var buf bytes.Buffer

	err := Encode(&buf, nil, FormatPNG)
	assert.ErrorContains(t, err, "image is nil")

	err = Encode(&buf, getTestImage(), ImageFormat("tiff"))
	assert.ErrorContains(t, err, "unsupported image format")
	assert.Zero(t, buf.Len())
}

func TestEncodePNGIsDeterministic(t *testing.T) {
	img := getGradientImage(64, 64)

	var first, second bytes.Buffer
	require.NoError(t, Encode(&first, img, FormatPNG))
	require.NoError(t, Encode(&second, img, FormatPNG))

	assert.Equal(t, first.Bytes(), second.Bytes())
}
