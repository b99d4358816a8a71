package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is returned when an output path has an unknown extension
var ErrUnsupportedFormat = errors.New("renderer: unsupported image format")

// jpegQuality is used for .jpg/.jpeg output
const jpegQuality = 95

// SupportedFormat reports whether EncodeImage can write format
func SupportedFormat(format string) bool {
	switch strings.ToLower(format) {
	case "png", "jpg", "jpeg", "bmp", "tif", "tiff":
		return true
	}
	return false
}

// EncodeImage writes img to w in the named format ("png", "jpeg", "bmp" or "tiff")
func EncodeImage(w io.Writer, img image.Image, format string) error {
	switch strings.ToLower(format) {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "bmp":
		return bmp.Encode(w, img)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// WriteImage saves img to path, picking the encoder from the file extension
func WriteImage(path string, img image.Image) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if !SupportedFormat(format) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := EncodeImage(file, img, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	logger.Noticef("wrote %s", path)
	return nil
}
