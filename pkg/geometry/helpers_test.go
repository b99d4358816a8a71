package geometry

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

// stubMaterial absorbs everything; tests only compare its identity
type stubMaterial struct {
	name string
}

func (m *stubMaterial) BSDF(core.Ray, *core.HitRecord, *rand.Rand) core.BSDFResult {
	return core.BSDFResult{}
}

// unbounded is an object with no bounding box
type unbounded struct{}

func (unbounded) Hit(core.Ray, float32, float32, *rand.Rand) (*core.HitRecord, bool) {
	return nil, false
}

func (unbounded) BoundingBox() (core.AABB, bool) {
	return core.AABB{}, false
}

const tolerance = 1e-4

func assertVec(t *testing.T, name string, got, want core.Vec3) {
	t.Helper()
	if !got.ApproxEquals(want, tolerance) {
		t.Errorf("Expected %s %v, got %v", name, want, got)
	}
}

func assertFloat(t *testing.T, name string, got, want float32) {
	t.Helper()
	if diff := got - want; diff > tolerance || diff < -tolerance {
		t.Errorf("Expected %s %g, got %g", name, want, got)
	}
}
