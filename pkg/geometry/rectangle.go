package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// rectanglePadding is the half-thickness given to rectangle bounding boxes
// along their thin axis. Zero-volume boxes break the slab test.
const rectanglePadding = 1e-4

// Plane selects the two coordinate axes a Rectangle spans
type Plane int

const (
	PlaneXY Plane = iota // spans X and Y, thin along Z
	PlaneXZ              // spans X and Z, thin along Y
	PlaneYZ              // spans Y and Z, thin along X
)

// axes returns the two in-plane axis indices followed by the thin axis index
func (p Plane) axes() (a, b, thin int) {
	switch p {
	case PlaneXZ:
		return 0, 2, 1
	case PlaneYZ:
		return 1, 2, 0
	default:
		return 0, 1, 2
	}
}

func (p Plane) String() string {
	switch p {
	case PlaneXZ:
		return "XZ"
	case PlaneYZ:
		return "YZ"
	default:
		return "XY"
	}
}

// Rectangle is an axis-aligned, infinitely thin rectangle lying at offset K
// along the plane's thin axis
type Rectangle struct {
	Plane    Plane
	Min      core.Vec2 // Lower bounds along the two in-plane axes
	Max      core.Vec2 // Upper bounds along the two in-plane axes
	K        float32   // Offset along the thin axis
	Material core.Material
}

// NewRectangle creates a rectangle spanning the corners p0 and p1 (in any order)
func NewRectangle(plane Plane, p0, p1 core.Vec2, k float32, material core.Material) *Rectangle {
	return &Rectangle{
		Plane:    plane,
		Min:      core.NewVec2(min(p0.X, p1.X), min(p0.Y, p1.Y)),
		Max:      core.NewVec2(max(p0.X, p1.X), max(p0.Y, p1.Y)),
		K:        k,
		Material: material,
	}
}

// Hit tests if a ray intersects with the rectangle
func (r *Rectangle) Hit(ray core.Ray, tMin, tMax float32, _ *rand.Rand) (*core.HitRecord, bool) {
	a, b, thin := r.Plane.axes()

	t := (r.K - ray.Origin.Axis(thin)) / ray.Direction.Axis(thin)
	// Negated comparisons also reject NaN from rays parallel to the plane
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	point := ray.At(t)
	pa, pb := point.Axis(a), point.Axis(b)
	if !(pa >= r.Min.X && pa <= r.Max.X && pb >= r.Min.Y && pb <= r.Max.Y) {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:     t,
		Point: point,
		UV: core.NewVec2(
			unitCoord(pa, r.Min.X, r.Max.X),
			unitCoord(pb, r.Min.Y, r.Max.Y),
		),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, core.Vec3{}.WithAxis(thin, 1))

	return hitRecord, true
}

// unitCoord maps p from [lo, hi] onto [0, 1]. A zero-width extent maps to 0.
func unitCoord(p, lo, hi float32) float32 {
	if hi <= lo {
		return 0
	}
	return (p - lo) / (hi - lo)
}

// BoundingBox returns the rectangle's bounds padded along the thin axis
func (r *Rectangle) BoundingBox() (core.AABB, bool) {
	a, b, thin := r.Plane.axes()

	lo := core.Vec3{}.WithAxis(a, r.Min.X).WithAxis(b, r.Min.Y).WithAxis(thin, r.K-rectanglePadding)
	hi := core.Vec3{}.WithAxis(a, r.Max.X).WithAxis(b, r.Max.Y).WithAxis(thin, r.K+rectanglePadding)
	return core.NewAABB(lo, hi), true
}
