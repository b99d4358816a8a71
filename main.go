package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-pathtracer/cmd"
	"github.com/df07/go-pathtracer/pkg/log"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	if err := cmd.NewApp().Run(os.Args); err != nil {
		log.New("pathtracer").Errorf("%v", err)
		os.Exit(1)
	}
}
