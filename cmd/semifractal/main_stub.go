//go:build !ebiten

package main

import (
	"flag"
	"fmt"
	"log"

	"semifractal/internal/app"
	"semifractal/internal/core"
	"semifractal/internal/fractal"
	"semifractal/internal/render"
)

// The headless build runs one generation and writes the result out, either
// as <seed>.png or as text with -ascii. Build with `-tags ebiten` for the
// interactive window.
func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	pipeline, err := cfg.Fractal()
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = core.NextSeed()
	}

	res, err := fractal.Generate(pipeline, seed)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(seed)

	if cfg.ASCII {
		fmt.Print(render.ASCII(res.Grid))
		return
	}
	path, err := render.SavePNG(res.Image, res.Seed, cfg.Out)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("saved %s", path)
}
