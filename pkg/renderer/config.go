package renderer

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned for sampling configurations that cannot be rendered
var ErrInvalidConfig = errors.New("renderer: invalid sampling configuration")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum number of path segments
	TileSize        int   // Edge length of the square tiles handed to workers
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed; every tile derives its own stream from it
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           960,
		Height:          540,
		SamplesPerPixel: 50,
		MaxDepth:        10,
		TileSize:        32,
		NumWorkers:      0,
		Seed:            42,
	}
}

// Validate reports the first setting that makes the configuration unusable
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: negative max depth %d", ErrInvalidConfig, c.MaxDepth)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.NumWorkers)
	}
	return nil
}

// AspectRatio returns width over height
func (c SamplingConfig) AspectRatio() float32 {
	return float32(c.Width) / float32(c.Height)
}
