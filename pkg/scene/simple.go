package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func simpleSettings() Settings {
	s := DefaultSettings()
	s.CameraPosition = core.NewVec3(3, 3, 2)
	s.CameraTarget = core.NewVec3(0, 0, -1)
	s.CameraAperture = 0.1
	return s
}

func loadSimple(world *geometry.World, _ Env) error {
	diffuse := material.NewLambertian(core.NewVec3(0.3, 0.3, 0.7))
	ground := material.NewLambertian(core.Uniform(0.3))
	metal := material.NewMetal(core.Uniform(0.8), 0.2)
	glass := material.NewDielectric(1.5)

	world.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, diffuse))
	world.Add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground))
	world.Add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, metal))
	world.Add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, glass))
	return nil
}
