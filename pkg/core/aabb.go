package core

import "errors"

// ErrEmptyPointCloud is returned when bounding an empty set of points
var ErrEmptyPointCloud = errors.New("core: cannot bound an empty point cloud")

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) (AABB, error) {
	if len(points) == 0 {
		return AABB{}, ErrEmptyPointCloud
	}

	box := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		box.Min = box.Min.Min(point)
		box.Max = box.Max.Max(point)
	}

	return box, nil
}

// Merge returns the smallest AABB enclosing both boxes
func Merge(a, b AABB) AABB {
	return AABB{Min: a.Min.Min(b.Min), Max: a.Max.Max(b.Max)}
}

// Hit tests if a ray intersects with this AABB using the slab method.
//
// A zero direction component yields ±Inf slab distances which the
// comparisons below handle without special casing. NaN distances (origin
// exactly on a slab plane of a parallel ray) never narrow the interval.
func (aabb AABB) Hit(ray Ray, tMin, tMax float32) bool {
	for axis := 0; axis < 3; axis++ {
		direction := ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)

		t0 := (aabb.Min.Axis(axis) - origin) / direction
		t1 := (aabb.Max.Axis(axis) - origin) / direction
		if direction < 0 {
			t0, t1 = t1, t0
		}

		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}

		if tMax <= tMin {
			return false
		}
	}

	return true
}

// Corners returns the 8 corner points of the box
func (aabb AABB) Corners() [8]Vec3 {
	lo, hi := aabb.Min, aabb.Max
	return [8]Vec3{
		{lo.X, lo.Y, lo.Z},
		{hi.X, lo.Y, lo.Z},
		{lo.X, hi.Y, lo.Z},
		{hi.X, hi.Y, lo.Z},
		{lo.X, lo.Y, hi.Z},
		{hi.X, lo.Y, hi.Z},
		{lo.X, hi.Y, hi.Z},
		{hi.X, hi.Y, hi.Z},
	}
}

// Size returns the size (extent) of the AABB along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
