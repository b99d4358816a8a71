package geometry

import (
	"math"
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float32
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float32, _ *rand.Rand) (*core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a := ray.Direction.LengthSquared()
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math32.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-b - sqrtD) / (2 * a)
	if root < tMin || root > tMax {
		// Try the farther intersection point
		root = (-b + sqrtD) / (2 * a)
		if root < tMin || root > tMax {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hitRecord.Point.Subtract(s.Center).Divide(s.Radius)
	hitRecord.UV = sphereUV(outwardNormal)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}

// sphereUV maps a point on the unit sphere to (u, v) in [0, 1]:
// u is the angle around the Y axis from X=-1, v the angle from Y=-1 to Y=+1.
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math32.Acos(max(-1, min(1, -p.Y)))
	phi := math32.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}

// BoundingBox returns the axis-aligned bounding box for this sphere
func (s *Sphere) BoundingBox() (core.AABB, bool) {
	radius := core.Uniform(math32.Abs(s.Radius))
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	), true
}
