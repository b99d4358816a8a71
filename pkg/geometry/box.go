package geometry

import (
	"math"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Box is an axis-aligned box centered at the origin. Place it in a scene by
// wrapping it in a Transform.
//
// The six faces are XY rectangles turned into place by transforms so every
// geometric normal points outward. Opposite faces share one rectangle, since
// the transforms never modify their child.
type Box struct {
	dims  core.Vec3
	min   core.Vec3
	max   core.Vec3
	sides *World
}

// NewBox creates a box with full extents dims along each axis
func NewBox(dims core.Vec3, material core.Material) *Box {
	half := dims.Multiply(0.5)
	p0, p1 := half.Negate(), half

	// Spans (x, z): rotating about X maps local z onto world ±y
	topBottom := NewRectangle(PlaneXY, core.NewVec2(p0.X, p0.Z), core.NewVec2(p1.X, p1.Z), half.Y, material)
	// Spans (z, y): rotating about Y maps local z onto world ±x
	leftRight := NewRectangle(PlaneXY, core.NewVec2(p0.Z, p0.Y), core.NewVec2(p1.Z, p1.Y), half.X, material)

	sides := NewWorld()
	sides.Add(RotateX(-math.Pi/2, topBottom))
	sides.Add(RotateX(math.Pi/2, topBottom))
	sides.Add(RotateY(math.Pi/2, leftRight))
	sides.Add(RotateY(-math.Pi/2, leftRight))
	// Rectangle normals are +z, so the back face is the front face turned
	// half a revolution to keep its normal pointing out of the box
	frontBack := NewRectangle(PlaneXY, core.NewVec2(p0.X, p0.Y), core.NewVec2(p1.X, p1.Y), p1.Z, material)
	sides.Add(frontBack)
	sides.Add(RotateY(math.Pi, frontBack))

	return &Box{
		dims:  dims,
		min:   p0,
		max:   p1,
		sides: sides,
	}
}

// Dims returns the full extents of the box
func (b *Box) Dims() core.Vec3 {
	return b.dims
}

// Hit returns the closest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float32, random *rand.Rand) (*core.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, random)
}

// BoundingBox returns the box's own extents
func (b *Box) BoundingBox() (core.AABB, bool) {
	return core.NewAABB(b.min, b.max), true
}
