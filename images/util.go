package images

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/draw"
)

// ComputeChecksum generates a deterministic checksum of an image's pixels to
// verify idempotency. Pixels are normalized to NRGBA first so that two images
// with the same content but different color models hash the same.
//
// Arguments:
// - img: The image to compute the checksum for.
//
// Returns:
// - A hex-encoded MD5 checksum string.
//
// Example:
//
// ```go
//
//	checksum := ComputeChecksum(icon)
//	fmt.Printf("Icon checksum: %s\n", checksum)
//
// ```
func ComputeChecksum(img image.Image) string {
	if img == nil || img.Bounds().Empty() {
		return "empty"
	}

	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Rect.Min != (image.Point{}) || nrgba.Stride != 4*bounds.Dx() {
		nrgba = image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", bounds.Dx(), bounds.Dy())
	hash.Write(nrgba.Pix[:4*bounds.Dx()*bounds.Dy()])
	return fmt.Sprintf("%x", hash.Sum(nil))
}
