package material

import (
	"image"
	"image/color"
	"testing"

	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestSolidColorAndUVDebug(t *testing.T) {
	uv := core.NewVec2(0.3, 0.6)
	p := core.NewVec3(1, 2, 3)

	if got := NewSolidColor(core.NewVec3(1, 0, 0)).Evaluate(uv, p); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected solid red, got %v", got)
	}
	if got := NewUVDebug().Evaluate(uv, p); got != core.NewVec3(0.3, 0.6, 0) {
		t.Errorf("Expected (u, v, 0), got %v", got)
	}
}

func TestChecker(t *testing.T) {
	black, white := core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)
	checker := NewChecker(black, white, 1)

	tests := []struct {
		name  string
		point core.Vec3
		want  core.Vec3
	}{
		{"all positive sines", core.NewVec3(1, 1, 1), white},
		{"one negative sine", core.NewVec3(-1, 1, 1), black},
		{"two negative sines", core.NewVec3(-1, -1, 1), white},
		{"three negative sines", core.NewVec3(-1, -1, -1), black},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checker.Evaluate(core.Vec2{}, tt.point); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNoise_RangeAndDeterminism(t *testing.T) {
	a := NewNoise(4, 42)
	b := NewNoise(4, 42)

	for i := 0; i < 20; i++ {
		for j := 0; j < 20; j++ {
			uv := core.NewVec2(float32(i)/19, float32(j)/19)
			got := a.Evaluate(uv, core.Vec3{})
			if got.X < 0 || got.X > 1 || got.X != got.Y || got.Y != got.Z {
				t.Fatalf("Expected gray value in [0,1] at %v, got %v", uv, got)
			}
			if other := b.Evaluate(uv, core.Vec3{}); other != got {
				t.Fatalf("Expected equal seeds to agree at %v: %v vs %v", uv, got, other)
			}
		}
	}
}

func TestImageTexture_NearestPixel(t *testing.T) {
	// 2x2: top row red, green; bottom row blue, white
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{255, 0, 0, 255})
	img.Set(1, 0, color.NRGBA{0, 255, 0, 255})
	img.Set(0, 1, color.NRGBA{0, 0, 255, 255})
	img.Set(1, 1, color.NRGBA{255, 255, 255, 255})
	texture := NewImageTextureFromImage(img)

	tests := []struct {
		name string
		uv   core.Vec2
		want core.Vec3
	}{
		{"top left", core.NewVec2(0.1, 0.9), core.NewVec3(1, 0, 0)},
		{"top right", core.NewVec2(0.9, 0.9), core.NewVec3(0, 1, 0)},
		{"bottom left", core.NewVec2(0.1, 0.1), core.NewVec3(0, 0, 1)},
		{"bottom right", core.NewVec2(0.9, 0.1), core.NewVec3(1, 1, 1)},
		{"corner u=1 v=1", core.NewVec2(1, 1), core.NewVec3(0, 1, 0)},
		{"corner u=0 v=0", core.NewVec2(0, 0), core.NewVec3(0, 0, 1)},
		{"clamped outside", core.NewVec2(-3, 7), core.NewVec3(1, 0, 0)},
		{"NaN treated as zero", core.NewVec2(math32.NaN(), math32.NaN()), core.NewVec3(0, 0, 1)},
		{"NaN u only", core.NewVec2(math32.NaN(), 0.9), core.NewVec3(1, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestImageTexture_Empty(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != (core.Vec3{}) {
		t.Errorf("Expected black for an empty texture, got %v", got)
	}
}
