package material

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
)

// maxTextureCoord keeps u and v strictly below 1 so lookups stay in bounds
const maxTextureCoord = 0.99999

// ImageTexture provides color from a decoded raster using nearest-pixel lookup
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major, top row first: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromImage converts a decoded image into a texture. Alpha is
// ignored; color channels are taken un-premultiplied.
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pixels[y*width+x] = core.NewVec3(
				float32(c.R)/255,
				float32(c.G)/255,
				float32(c.B)/255,
			)
		}
	}

	return NewImageTexture(width, height, pixels)
}

// Evaluate samples the nearest pixel. UVs outside [0, 1] are clamped to the
// border and v=1 is the top row of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}

	u := clampTextureCoord(uv.X)
	v := clampTextureCoord(uv.Y)

	x := int(u * float32(t.Width))
	y := int((1 - v) * float32(t.Height))
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

// clampTextureCoord clamps c to [0, maxTextureCoord]; NaN becomes 0
func clampTextureCoord(c float32) float32 {
	if c != c {
		return 0
	}
	return max(0, min(maxTextureCoord, c))
}
