// Package cmd implements the pathtracer command line
package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// NewApp builds the command line application
func NewApp() *cli.App {
	defaults := renderer.DefaultSamplingConfig()

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render built-in scenes with Monte Carlo path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Build the selected scene and its BVH, trace every pixel in parallel tiles and
write the gamma corrected result. The output format follows the file extension
(png, jpg, bmp or tiff).

Samples per pixel and bounce depth default to the scene's own settings; a JSON
file passed with --settings overrides any of them before flags are applied.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "cornell",
					Usage: "scene name, see the scenes command",
				},
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "frame width",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Value: 16.0 / 9.0,
					Usage: "frame aspect ratio (width / height)",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: defaults.SamplesPerPixel,
					Usage: "samples per pixel (defaults to the scene setting)",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: defaults.MaxDepth,
					Usage: "maximum path segments (defaults to the scene setting)",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "render goroutines, 0 uses every logical core",
				},
				cli.IntFlag{
					Name:  "tile",
					Value: defaults.TileSize,
					Usage: "tile edge length in pixels",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "random seed for sampling, BVH construction and scene content",
				},
				cli.StringFlag{
					Name:  "texture",
					Value: scene.DefaultTexturePath,
					Usage: "image used by textured scenes",
				},
				cli.StringFlag{
					Name:  "settings",
					Usage: "JSON file overriding scene settings",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "output.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: ListScenes,
		},
	}

	return app
}
