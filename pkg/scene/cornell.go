package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

func cornellSettings() Settings {
	return DefaultSettings()
}

// loadCornell builds a box of size 2 centred on the origin, open towards the
// camera. Every wall is the same rectangle at z=1 rotated into place, so the
// wall geometry is shared rather than copied.
func loadCornell(world *geometry.World, _ Env) error {
	const size, lightSize = 1, 0.2
	quarter := mgl32.DegToRad(90)

	wall := func(mat core.Material) *geometry.Rectangle {
		return geometry.NewRectangle(geometry.PlaneXY, core.NewVec2(-size, -size), core.NewVec2(size, size), size, mat)
	}
	grey := wall(material.NewLambertian(core.Uniform(0.2)))
	red := wall(material.NewLambertian(core.NewVec3(1, 0, 0)))
	teal := wall(material.NewLambertian(core.NewVec3(0, 1, 1)))

	light := geometry.NewRectangle(geometry.PlaneXY, core.NewVec2(-lightSize, -lightSize), core.NewVec2(lightSize, lightSize), 0.99,
		material.NewDiffuseLight(core.NewVec3(1, 1, 1), 5))
	// Rotating -90 degrees about X takes z=k to y=k
	world.Add(geometry.RotateX(-quarter, light))

	world.Add(geometry.RotateX(-quarter, grey)) // ceiling
	world.Add(geometry.RotateX(quarter, grey))  // floor
	world.Add(grey)                             // back
	world.Add(geometry.RotateY(-quarter, red))
	world.Add(geometry.RotateY(quarter, teal))

	white := material.NewLambertian(core.Uniform(1))
	const density = 0.7

	tall := geometry.NewBox(core.NewVec3(0.4, 0.8, 0.4), white)
	tallPlaced := geometry.Translate(core.NewVec3(-0.07, 0.12, -0.07), geometry.RotateY(mgl32.DegToRad(-15), tall))
	world.Add(geometry.NewVolumetricColor(tallPlaced, density, core.Uniform(0)))

	cube := geometry.NewBox(core.NewVec3(0.4, 0.4, 0.4), white)
	cubePlaced := geometry.Translate(core.NewVec3(0.07, 0.2, 0), geometry.RotateY(mgl32.DegToRad(30), cube))
	world.Add(geometry.NewVolumetricColor(cubePlaced, density, core.Uniform(1)))
	return nil
}
