package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func randomBox(random *rand.Rand) AABB {
	a := NewVec3(random.Float32()*10-5, random.Float32()*10-5, random.Float32()*10-5)
	b := NewVec3(random.Float32()*10-5, random.Float32()*10-5, random.Float32()*10-5)
	return NewAABB(a.Min(b), a.Max(b))
}

func TestAABB_MergeProperties(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		a, b, c := randomBox(random), randomBox(random), randomBox(random)

		if Merge(a, b) != Merge(b, a) {
			t.Fatalf("Merge is not commutative for %v, %v", a, b)
		}
		if Merge(Merge(a, b), c) != Merge(a, Merge(b, c)) {
			t.Fatalf("Merge is not associative for %v, %v, %v", a, b, c)
		}
		if Merge(a, a) != a {
			t.Fatalf("Merge is not idempotent for %v", a)
		}
		if !Merge(a, b).IsValid() {
			t.Fatalf("Merge produced inverted bounds for %v, %v", a, b)
		}
	}
}

func TestNewAABBFromPoints(t *testing.T) {
	box, err := NewAABBFromPoints(
		NewVec3(1, -2, 3),
		NewVec3(-1, 5, 0),
		NewVec3(0, 0, -4),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !box.Min.Equals(NewVec3(-1, -2, -4)) || !box.Max.Equals(NewVec3(1, 5, 3)) {
		t.Errorf("Unexpected bounds %v - %v", box.Min, box.Max)
	}

	if !box.IsValid() {
		t.Errorf("Expected min <= max on every axis, got %v - %v", box.Min, box.Max)
	}
	if inverted := NewAABB(NewVec3(0, 1, 0), NewVec3(1, 0, 1)); inverted.IsValid() {
		t.Errorf("Expected %v to be invalid", inverted)
	}

	if _, err := NewAABBFromPoints(); !errors.Is(err, ErrEmptyPointCloud) {
		t.Errorf("Expected ErrEmptyPointCloud, got %v", err)
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))
	inf := math32.Inf(1)

	tests := []struct {
		name     string
		ray      Ray
		tMin     float32
		tMax     float32
		expected bool
	}{
		{"straight on", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0, inf, true},
		{"pointing away", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, -1)), 0, inf, false},
		{"parallel outside slab", NewRay(NewVec3(0, 2, -5), NewVec3(0, 0, 1)), 0, inf, false},
		{"parallel inside slab", NewRay(NewVec3(0, 0.5, -5), NewVec3(0, 0, 1)), 0, inf, true},
		{"diagonal", NewRay(NewVec3(-5, -5, -5), NewVec3(1, 1, 1)), 0, inf, true},
		{"negative direction", NewRay(NewVec3(5, 0, 0), NewVec3(-1, 0, 0)), 0, inf, true},
		{"interval ends before box", NewRay(NewVec3(0, 0, -5), NewVec3(0, 0, 1)), 0, 3, false},
		{"origin inside", NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0)), 0, inf, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, tt.tMin, tt.tMax); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

// slabHitOrdered repeats the slab test visiting the axes in a custom order
func slabHitOrdered(box AABB, ray Ray, tMin, tMax float32, order [3]int) bool {
	for _, axis := range order {
		direction := ray.Direction.Axis(axis)
		origin := ray.Origin.Axis(axis)
		t0 := (box.Min.Axis(axis) - origin) / direction
		t1 := (box.Max.Axis(axis) - origin) / direction
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

func TestAABB_HitAxisOrderIndependent(t *testing.T) {
	random := rand.New(rand.NewSource(99))
	orders := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for i := 0; i < 500; i++ {
		box := randomBox(random)
		origin := NewVec3(random.Float32()*20-10, random.Float32()*20-10, random.Float32()*20-10)
		ray := NewRay(origin, RandomUnitVector(random))

		expected := box.Hit(ray, 0.001, math32.Inf(1))
		for _, order := range orders {
			if got := slabHitOrdered(box, ray, 0.001, math32.Inf(1), order); got != expected {
				t.Fatalf("Axis order %v disagrees for box %v ray %v", order, box, ray)
			}
		}
	}
}

func TestAABB_Corners(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 2, 3))
	corners := box.Corners()

	refit, err := NewAABBFromPoints(corners[:]...)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if refit != box {
		t.Errorf("Expected corners to refit the same box, got %v", refit)
	}
}
