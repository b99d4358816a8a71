package core

import "fmt"

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized.
//
// Rays re-expressed in another coordinate space (see geometry.Transform) are
// built as struct literals instead, so that their direction keeps the length
// the space conversion produced and hit distances stay comparable with the
// original ray.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float32) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// String implements fmt.Stringer
func (r Ray) String() string {
	return fmt.Sprintf("Ray(origin=%v, dir=%v)", r.Origin, r.Direction)
}
