package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestBox_FaceHits(t *testing.T) {
	mat := &stubMaterial{name: "box"}
	box := NewBox(core.NewVec3(2, 4, 6), mat)

	tests := []struct {
		name   string
		origin core.Vec3
		dir    core.Vec3
		t      float32
		normal core.Vec3
	}{
		{"right", core.NewVec3(10, 0, 0), core.NewVec3(-1, 0, 0), 9, core.NewVec3(1, 0, 0)},
		{"left", core.NewVec3(-10, 0, 0), core.NewVec3(1, 0, 0), 9, core.NewVec3(-1, 0, 0)},
		{"top", core.NewVec3(0, 10, 0), core.NewVec3(0, -1, 0), 8, core.NewVec3(0, 1, 0)},
		{"bottom", core.NewVec3(0, -10, 0), core.NewVec3(0, 1, 0), 8, core.NewVec3(0, -1, 0)},
		{"front", core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), 7, core.NewVec3(0, 0, 1)},
		{"back", core.NewVec3(0, 0, -10), core.NewVec3(0, 0, 1), 7, core.NewVec3(0, 0, -1)},
		{"right corner", core.NewVec3(10, 1.9, 2.9), core.NewVec3(-1, 0, 0), 9, core.NewVec3(1, 0, 0)},
		{"top corner", core.NewVec3(0.9, 10, -2.9), core.NewVec3(0, -1, 0), 8, core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := box.Hit(core.NewRay(tt.origin, tt.dir), 0.001, 1000, nil)
			if !isHit {
				t.Fatal("Expected hit")
			}
			assertFloat(t, "t", hit.T, tt.t)
			assertVec(t, "normal", hit.Normal, tt.normal)
			if !hit.FrontFace {
				t.Error("Expected front face hit from outside")
			}
			if hit.Material != mat {
				t.Error("Expected the box's material on the hit record")
			}
		})
	}
}

func TestBox_OutsideRaysHitFrontFaces(t *testing.T) {
	box := NewBox(core.NewVec3(1, 1, 1), nil)

	directions := []core.Vec3{
		core.NewVec3(1, 0, 0), core.NewVec3(-1, 0, 0),
		core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0),
		core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1),
	}

	for _, dir := range directions {
		hit, isHit := box.Hit(core.NewRay(dir.Multiply(-5), dir), 0.001, 1000, nil)
		if !isHit {
			t.Fatalf("Expected hit travelling along %v", dir)
		}
		assertFloat(t, "t", hit.T, 4.5)
		if !hit.FrontFace {
			t.Errorf("Expected front face travelling along %v", dir)
		}
		assertVec(t, "normal", hit.Normal, dir.Negate())

		// Leaving through the opposite face is a back face hit
		exit, isHit := box.Hit(core.NewRay(core.Vec3{}, dir), 0.001, 1000, nil)
		if !isHit {
			t.Fatalf("Expected exit hit travelling along %v", dir)
		}
		if exit.FrontFace {
			t.Errorf("Expected back face leaving along %v", dir)
		}
	}
}

func TestBox_MissesOutsideExtents(t *testing.T) {
	box := NewBox(core.NewVec3(2, 4, 6), nil)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(10, 2.1, 0), core.NewVec3(-1, 0, 0)),
		core.NewRay(core.NewVec3(0, 10, 3.1), core.NewVec3(0, -1, 0)),
		core.NewRay(core.NewVec3(1.1, 0, 10), core.NewVec3(0, 0, -1)),
	}
	for _, ray := range rays {
		if hit, isHit := box.Hit(ray, 0.001, 1000, nil); isHit {
			t.Errorf("Expected miss for %v, got hit at %v", ray, hit.Point)
		}
	}
}

func TestBox_HitFromInside(t *testing.T) {
	box := NewBox(core.NewVec3(2, 2, 2), nil)

	hit, isHit := box.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0.001, 1000, nil)
	if !isHit {
		t.Fatal("Expected hit")
	}
	assertFloat(t, "t", hit.T, 1)
	if hit.FrontFace {
		t.Error("Expected back face hit from inside the box")
	}
	assertVec(t, "normal", hit.Normal, core.NewVec3(0, 0, -1))
}

func TestBox_BoundingBox(t *testing.T) {
	box := NewBox(core.NewVec3(2, 4, 6), nil)

	bbox, ok := box.BoundingBox()
	if !ok {
		t.Fatal("Expected box to have a bounding box")
	}
	assertVec(t, "min", bbox.Min, core.NewVec3(-1, -2, -3))
	assertVec(t, "max", bbox.Max, core.NewVec3(1, 2, 3))
	assertVec(t, "dims", box.Dims(), core.NewVec3(2, 4, 6))
}

func TestBox_Rotated(t *testing.T) {
	rotated := RotateY(math.Pi/4, NewBox(core.NewVec3(2, 2, 2), nil))

	bbox, ok := rotated.BoundingBox()
	if !ok {
		t.Fatal("Expected rotated box to have a bounding box")
	}
	sqrt2 := float32(math.Sqrt2)
	assertVec(t, "min", bbox.Min, core.NewVec3(-sqrt2, -1, -sqrt2))
	assertVec(t, "max", bbox.Max, core.NewVec3(sqrt2, 1, sqrt2))

	// Seen from +x the rotated box presents an edge at x = sqrt(2); just off
	// the edge the ray lands on the face lying in the plane x + z = sqrt(2)
	hit, isHit := rotated.Hit(core.NewRay(core.NewVec3(5, 0, 0.2), core.NewVec3(-1, 0, 0)), 0.001, 1000, nil)
	if !isHit {
		t.Fatal("Expected hit on rotated box")
	}
	assertFloat(t, "t", hit.T, 5.2-sqrt2)
	assertVec(t, "normal", hit.Normal, core.NewVec3(1, 0, 1).Normalize())
}
