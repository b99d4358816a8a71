package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestTransform_Translate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)
	moved := Translate(core.NewVec3(0, 0, -3), sphere)

	hit, isHit := moved.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), 0.001, 1000, nil)
	if !isHit {
		t.Fatal("Expected hit on translated sphere")
	}
	assertFloat(t, "t", hit.T, 2)
	assertVec(t, "point", hit.Point, core.NewVec3(0, 0, -2))
	assertVec(t, "normal", hit.Normal, core.NewVec3(0, 0, 1))
	if !hit.FrontFace {
		t.Error("Expected front face hit")
	}

	box, _ := moved.BoundingBox()
	assertVec(t, "min", box.Min, core.NewVec3(-1, -1, -4))
	assertVec(t, "max", box.Max, core.NewVec3(1, 1, -2))
}

func TestTransform_Rotate(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 0, 0), 0.5, nil)

	tests := []struct {
		name   string
		object *Transform
		center core.Vec3
	}{
		{"about X", RotateX(math.Pi/2, sphere), core.NewVec3(1, 0, 0)},
		{"about Y", RotateY(math.Pi/2, sphere), core.NewVec3(0, 0, -1)},
		{"about Z", RotateZ(math.Pi/2, sphere), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, "center", tt.object.ToWorld(sphere.Center), tt.center)

			origin := tt.center.Add(core.NewVec3(0, 0, 5))
			hit, isHit := tt.object.Hit(core.NewRay(origin, core.NewVec3(0, 0, -1)), 0.001, 1000, nil)
			if !isHit {
				t.Fatal("Expected hit on rotated sphere")
			}
			assertFloat(t, "t", hit.T, 4.5)
			assertVec(t, "normal", hit.Normal, core.NewVec3(0, 0, 1))
		})
	}
}

func TestTransform_RoundTrip(t *testing.T) {
	rotation := mgl32.HomogRotate3D(0.7, mgl32.Vec3{1, 2, 3}.Normalize()).Mat3()
	transform := RotateTranslate(rotation, core.NewVec3(3, -2, 5), NewSphere(core.Vec3{}, 1, nil))

	points := []core.Vec3{
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 2, 3),
		core.NewVec3(-4, 0.5, 7),
	}
	for _, p := range points {
		assertVec(t, "round trip", transform.ToObject(transform.ToWorld(p)), p)
	}
	assertVec(t, "origin", transform.ToWorld(core.Vec3{}), core.NewVec3(3, -2, 5))
}

func TestTransform_IdentityMatchesChild(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0.3, -0.2, 0.1), 1, nil)
	identity, err := NewTransform(mgl32.Ident4(), sphere)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ray := core.NewRay(core.NewVec3(0.1, 0.2, 5), core.NewVec3(0.05, -0.1, -1))
	want, _ := sphere.Hit(ray, 0.001, 1000, nil)
	got, isHit := identity.Hit(ray, 0.001, 1000, nil)
	if !isHit {
		t.Fatal("Expected hit")
	}
	assertFloat(t, "t", got.T, want.T)
	assertVec(t, "point", got.Point, want.Point)
	assertVec(t, "normal", got.Normal, want.Normal)
}

func TestTransform_ScaleKeepsOuterParametrization(t *testing.T) {
	scaled, err := NewTransform(mgl32.Scale3D(2, 2, 2), NewSphere(core.Vec3{}, 1, nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hit, isHit := scaled.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 0.001, 1000, nil)
	if !isHit {
		t.Fatal("Expected hit")
	}
	// The world-space sphere has radius 2, so t is measured in world units
	assertFloat(t, "t", hit.T, 3)
	assertVec(t, "point", hit.Point, core.NewVec3(0, 0, 2))
	assertFloat(t, "normal length", hit.Normal.Length(), 1)
}

func TestTransform_Singular(t *testing.T) {
	_, err := NewTransform(mgl32.Scale3D(0, 1, 1), NewSphere(core.Vec3{}, 1, nil))
	if !errors.Is(err, ErrSingularTransform) {
		t.Errorf("Expected ErrSingularTransform, got %v", err)
	}
}

func TestTransform_UnboundedChild(t *testing.T) {
	if _, ok := Translate(core.NewVec3(1, 0, 0), unbounded{}).BoundingBox(); ok {
		t.Error("Expected no bounding box for an unbounded child")
	}
}
