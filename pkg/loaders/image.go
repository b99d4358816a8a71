// Package loaders reads external assets used to build scenes
package loaders

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-pathtracer/pkg/log"
	"github.com/df07/go-pathtracer/pkg/material"
)

var logger = log.New("loaders")

// LoadImage decodes an image file in any registered format
func LoadImage(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Format is detected from the file header, not the extension
	img, format, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	logger.Debugf("loaded %s (%s, %dx%d)", filename, format, bounds.Dx(), bounds.Dy())
	return img, nil
}

// LoadImageTexture loads an image file as a texture with v=1 at the top row
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	img, err := LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return material.NewImageTextureFromImage(img), nil
}
