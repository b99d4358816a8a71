package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// DisplayGamma is the gamma applied when converting linear radiance to 8-bit
const DisplayGamma = 2.2

// FrameBuffer holds linear radiance per pixel in image coordinates: row 0 is
// the top of the image
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[row*Width + x]
}

// NewFrameBuffer allocates a black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// At returns the radiance stored at column x, row y
func (fb *FrameBuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// Set stores radiance at column x, row y
func (fb *FrameBuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// MeanLuminance returns the average luminance over a rectangle of pixels
func (fb *FrameBuffer) MeanLuminance(bounds image.Rectangle) float32 {
	bounds = bounds.Intersect(image.Rect(0, 0, fb.Width, fb.Height))
	if bounds.Empty() {
		return 0
	}

	var sum float32
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			sum += fb.At(x, y).Luminance()
		}
	}
	return sum / float32(bounds.Dx()*bounds.Dy())
}

// ToRGBA gamma-corrects and quantizes the frame to an 8-bit image
func (fb *FrameBuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, Vec3ToColor(fb.At(x, y)))
		}
	}
	return img
}

// Vec3ToColor converts linear radiance to an opaque 8-bit color
func Vec3ToColor(c core.Vec3) color.RGBA {
	c = c.GammaCorrect(DisplayGamma)
	return color.RGBA{
		R: quantize(c.X),
		G: quantize(c.Y),
		B: quantize(c.Z),
		A: 255,
	}
}

// quantize maps [0, 1] onto [0, 255] so that exactly 1.0 still reaches 255
func quantize(v float32) uint8 {
	if v != v { // NaN
		return 0
	}
	return uint8(max(0, min(255, v*255.999)))
}
