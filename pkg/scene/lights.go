package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func lightsSettings() Settings {
	s := DefaultSettings()
	s.CameraPosition = core.NewVec3(5, 2, 0)
	s.CameraTarget = core.NewVec3(0, 0.1, 0)
	return s
}

func loadLights(world *geometry.World, _ Env) error {
	world.Add(groundSphere(material.NewLambertian(core.Uniform(0.05))))

	world.Add(geometry.NewSphere(core.NewVec3(-3.5, 0.45, 1), 0.9, material.NewLambertian(core.Uniform(0.5))))
	world.Add(geometry.NewSphere(core.NewVec3(1.5, 0.45, 0.5), 0.5, material.NewTintedDielectric(1.3, core.NewVec3(0.5, 0.7, 0.7))))

	const size = 6
	red := material.NewDiffuseLight(core.NewVec3(0.5, 0, 0), 3)
	world.Add(geometry.NewRectangle(geometry.PlaneXY, core.NewVec2(-size, -size), core.NewVec2(size, size), 3, red))
	return nil
}
