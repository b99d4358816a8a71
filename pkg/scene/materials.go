package scene

import (
	"github.com/chewxy/math32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// groundSphere is the huge sphere most scenes stand on
func groundSphere(mat core.Material) *geometry.Sphere {
	return geometry.NewSphere(core.NewVec3(0, -1000.45, -1.2), 1000, mat)
}

func materialsSettings() Settings {
	s := DefaultSettings()
	s.CameraPosition = core.NewVec3(0, 2, 5)
	s.CameraTarget = core.NewVec3(0, 0.1, 0)
	return s
}

// loadMaterials lays out five large spheres on a shallow arc and four small
// tinted glass spheres in front of them
func loadMaterials(world *geometry.World, _ Env) error {
	world.Add(groundSphere(material.NewLambertian(core.NewVec3(0.15, 0.3, 0.15))))

	const ior, dark, light = 1.3, 0.5, 0.7
	big := []core.Material{
		material.NewLambertian(core.Uniform(1)),
		material.NewMetal(core.Uniform(0.2), 0.1),
		material.NewLambertian(core.NewVec3(0.4, 0.45, 0.6)),
		material.NewMetal(core.Uniform(0.9), 0),
		material.NewMetal(core.NewVec3(0.7, 0.3, 0.3), 0.5),
	}
	small := []core.Material{
		material.NewTintedDielectric(ior, core.NewVec3(light, dark, dark)),
		material.NewTintedDielectric(ior, core.NewVec3(dark, light, dark)),
		material.NewTintedDielectric(ior, core.NewVec3(dark, dark, light)),
		material.NewTintedDielectric(ior, core.NewVec3(dark, light, light)),
	}

	const bigRadius = 0.9
	const bigStep = bigRadius * 2.1
	bigLeft := core.NewVec3(-bigStep*2, 0.45, -3.5)
	for i, mat := range big {
		fi := float32(i)
		// Middle sphere sits furthest back
		depth := 2 - math32.Abs(2-fi)
		center := bigLeft.Add(core.NewVec3(bigStep*fi, 0, -depth))
		world.Add(geometry.NewSphere(center, bigRadius, mat))
	}

	const smallRadius = 0.3
	const smallStep = smallRadius * 2.1
	smallLeft := core.NewVec3(-smallStep*1.5, -0.12, -0.5)
	for i, mat := range small {
		center := smallLeft.Add(core.NewVec3(smallStep*float32(i), 0, 0))
		world.Add(geometry.NewSphere(center, smallRadius, mat))
	}
	return nil
}
