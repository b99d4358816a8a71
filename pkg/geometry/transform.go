package geometry

import (
	"errors"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ErrSingularTransform is returned for matrices that cannot be inverted
var ErrSingularTransform = errors.New("geometry: transform matrix is not invertible")

// Transform places a wrapped object in the outer (world) space using an
// affine matrix. Rays are moved into the object's space instead of moving the
// object, so the wrapped object is never copied.
//
// Normals are mapped back with the inverse-transpose of the linear part.
// Scene code only builds rigid transforms (rotation + translation); hit
// distances stay in the outer ray's parametrization for any affine matrix
// because the object-space direction is never renormalized.
type Transform struct {
	forward      mgl32.Mat4 // object -> world
	inverse      mgl32.Mat4 // world -> object
	linear       mgl32.Mat3 // rotational part of inverse, for directions
	normalMatrix mgl32.Mat3 // inverse-transpose of forward's rotational part
	object       core.Intersectable
	bbox         core.AABB
	hasBox       bool
}

// NewTransform wraps object with the object-to-world matrix
func NewTransform(matrix mgl32.Mat4, object core.Intersectable) (*Transform, error) {
	if matrix.Det() == 0 {
		return nil, ErrSingularTransform
	}
	return newTransform(matrix, object), nil
}

// Translate moves object by offset
func Translate(offset core.Vec3, object core.Intersectable) *Transform {
	return newTransform(mgl32.Translate3D(offset.X, offset.Y, offset.Z), object)
}

// RotateX rotates object around the X axis by angle radians
func RotateX(angle float32, object core.Intersectable) *Transform {
	return newTransform(mgl32.HomogRotate3DX(angle), object)
}

// RotateY rotates object around the Y axis by angle radians
func RotateY(angle float32, object core.Intersectable) *Transform {
	return newTransform(mgl32.HomogRotate3DY(angle), object)
}

// RotateZ rotates object around the Z axis by angle radians
func RotateZ(angle float32, object core.Intersectable) *Transform {
	return newTransform(mgl32.HomogRotate3DZ(angle), object)
}

// RotateTranslate rotates object by rotation, then moves it by offset
func RotateTranslate(rotation mgl32.Mat3, offset core.Vec3, object core.Intersectable) *Transform {
	matrix := mgl32.Translate3D(offset.X, offset.Y, offset.Z).Mul4(rotation.Mat4())
	return newTransform(matrix, object)
}

func newTransform(forward mgl32.Mat4, object core.Intersectable) *Transform {
	inverse := forward.Inv()
	t := &Transform{
		forward:      forward,
		inverse:      inverse,
		linear:       inverse.Mat3(),
		normalMatrix: inverse.Mat3().Transpose(),
		object:       object,
	}
	t.bbox, t.hasBox = t.computeBoundingBox()
	return t
}

// computeBoundingBox refits an axis-aligned box around the 8 transformed
// corners of the child's box. Transforming only min/max is wrong under rotation.
func (t *Transform) computeBoundingBox() (core.AABB, bool) {
	inner, ok := t.object.BoundingBox()
	if !ok {
		return core.AABB{}, false
	}

	corners := inner.Corners()
	for i, corner := range corners {
		corners[i] = t.ToWorld(corner)
	}

	box, err := core.NewAABBFromPoints(corners[:]...)
	if err != nil {
		return core.AABB{}, false
	}
	return box, true
}

// ToWorld maps a point from object space into world space
func (t *Transform) ToWorld(p core.Vec3) core.Vec3 {
	return transformPoint(t.forward, p)
}

// ToObject maps a point from world space into object space
func (t *Transform) ToObject(p core.Vec3) core.Vec3 {
	return transformPoint(t.inverse, p)
}

// Hit tests the wrapped object against the ray expressed in object space
func (t *Transform) Hit(ray core.Ray, tMin, tMax float32, random *rand.Rand) (*core.HitRecord, bool) {
	local := core.Ray{
		Origin:    t.ToObject(ray.Origin),
		Direction: transformVector(t.linear, ray.Direction),
	}

	hit, ok := t.object.Hit(local, tMin, tMax, random)
	if !ok {
		return nil, false
	}

	// The linear map and its inverse-transpose preserve the sign of
	// dot(normal, direction), so FrontFace carries over unchanged.
	hit.Point = t.ToWorld(hit.Point)
	hit.Normal = transformVector(t.normalMatrix, hit.Normal).Normalize()
	return hit, true
}

// BoundingBox returns the cached world-space bounding box
func (t *Transform) BoundingBox() (core.AABB, bool) {
	return t.bbox, t.hasBox
}

func transformPoint(m mgl32.Mat4, p core.Vec3) core.Vec3 {
	v := m.Mul4x1(mgl32.Vec4{p.X, p.Y, p.Z, 1})
	return core.NewVec3(v[0], v[1], v[2])
}

func transformVector(m mgl32.Mat3, d core.Vec3) core.Vec3 {
	v := m.Mul3x1(mgl32.Vec3{d.X, d.Y, d.Z})
	return core.NewVec3(v[0], v[1], v[2])
}
