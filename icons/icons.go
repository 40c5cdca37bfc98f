// Package icons generates fixed-size application icons from a single source image.
package icons

import (
	"fmt"
	"path/filepath"

	"github.com/nvr-ai/go-icons/images"
	"github.com/pkg/errors"
)

const (
	// OutputDir is the directory the source is read from and icons are written to.
	OutputDir = "images"
	// SourcePath is the source image every icon is derived from.
	SourcePath = OutputDir + "/NCS.png"
)

// Icon describes one output icon.
type Icon struct {
	// The width of the icon in pixels.
	Width int `json:"width" yaml:"width"`
	// The height of the icon in pixels.
	Height int `json:"height" yaml:"height"`
	// The path the icon is written to.
	Path string `json:"path" yaml:"path"`
}

// NewIcon returns an icon of the given size named icon-WxH.png under dir.
func NewIcon(dir string, width, height int) Icon {
	return Icon{
		Width:  width,
		Height: height,
		Path:   filepath.Join(dir, fmt.Sprintf("icon-%dx%d.png", width, height)),
	}
}

func (i Icon) String() string {
	return fmt.Sprintf("%dx%d -> %s", i.Width, i.Height, i.Path)
}

// Generator resizes one source image into a list of icons.
type Generator struct {
	// Source is the path of the source image.
	Source string `json:"source" yaml:"source"`
	// Icons are generated in order, each from the unmodified source.
	Icons []Icon `json:"icons" yaml:"icons"`
	// Filter is the resampling filter.
	Filter images.ResampleFilter `json:"filter" yaml:"filter"`
	// Format is the output encoding.
	Format images.ImageFormat `json:"format" yaml:"format"`
}

// Default returns the generator for the web app manifest icons: 192x192 and
// 512x512 PNGs derived from SourcePath with a Lanczos filter.
func Default() *Generator {
	return &Generator{
		Source: SourcePath,
		Icons: []Icon{
			NewIcon(OutputDir, 192, 192),
			NewIcon(OutputDir, 512, 512),
		},
		Filter: images.LanczosFilter,
		Format: images.FormatPNG,
	}
}

// Generate loads the source once and writes every icon, overwriting existing
// files. The source is fully decoded before any output is opened. It stops at
// the first failure; icons already written are left in place and their paths
// are returned along with the error.
//
// Returns:
//   - []string: Paths of the icons written, in order.
//   - error: Error if loading, resizing, or writing fails.
func (g *Generator) Generate() ([]string, error) {
	src, err := images.LoadImageFile(g.Source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load source image")
	}

	written := make([]string, 0, len(g.Icons))
	for _, icon := range g.Icons {
		if err := g.render(src, icon); err != nil {
			return written, errors.Wrapf(err, "icon %s", icon)
		}
		written = append(written, icon.Path)
	}

	return written, nil
}

func (g *Generator) render(src *images.Image, icon Icon) error {
	resized, err := images.Resize(src.Pixels, icon.Width, icon.Height, g.Filter)
	if err != nil {
		return err
	}
	return images.SaveImageFile(icon.Path, resized, g.Format)
}
