package geometry

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
)

// World is a flat, unordered collection of objects searched linearly.
// It is append-only while a scene is built and read-only while rendering.
type World struct {
	Objects []core.Intersectable
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// Add appends an object to the world
func (w *World) Add(object core.Intersectable) {
	w.Objects = append(w.Objects, object)
}

// Len returns the number of objects in the world
func (w *World) Len() int {
	return len(w.Objects)
}

// Hit returns the closest hit among all objects. Each hit shrinks the upper
// bound so later objects only need to beat the current best.
func (w *World) Hit(ray core.Ray, tMin, tMax float32, random *rand.Rand) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax

	for _, object := range w.Objects {
		if hit, isHit := object.Hit(ray, tMin, closestSoFar, random); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox merges the boxes of all objects. An empty world, or one holding
// any unbounded object, has no bounding box.
func (w *World) BoundingBox() (core.AABB, bool) {
	if len(w.Objects) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, object := range w.Objects {
		box, ok := object.BoundingBox()
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = core.Merge(result, box)
		}
	}

	return result, true
}
