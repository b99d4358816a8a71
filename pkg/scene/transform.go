package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
)

func transformSettings() Settings {
	s := DefaultSettings()
	s.CameraPosition = core.NewVec3(5, 5, 5)
	s.CameraTarget = core.NewVec3(0, 0, 0)
	return s
}

// loadTransform tilts a textured square and marks the corners of its
// untransformed footprint on the XZ plane
func loadTransform(world *geometry.World, env Env) error {
	const size = 2

	markers := []struct {
		x, z  float32
		color core.Vec3
	}{
		{-size, -size, core.NewVec3(0, 0, 0)},
		{size, -size, core.NewVec3(1, 0, 0)},
		{-size, size, core.NewVec3(0, 1, 0)},
		{size, size, core.NewVec3(1, 1, 0)},
	}
	for _, m := range markers {
		world.Add(geometry.NewSphere(core.NewVec3(m.x, 0, m.z), 0.1, material.NewLambertian(m.color)))
	}

	image, err := loaders.LoadImageTexture(env.TexturePath)
	if err != nil {
		return err
	}
	square := geometry.NewRectangle(geometry.PlaneXY, core.NewVec2(-size, -size), core.NewVec2(size, size), 0,
		material.NewTexturedLambertian(image))
	world.Add(geometry.RotateX(mgl32.DegToRad(45), square))
	return nil
}
