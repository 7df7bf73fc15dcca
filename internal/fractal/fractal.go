// Package fractal wires the generation pipeline together: a validated
// configuration plus one function that takes a seed to a finished pixel
// buffer. The pipeline is stateless; each call produces a fresh Result the
// caller owns outright.
package fractal

import (
	"fmt"
	"image"
	"image/color"

	"semifractal/internal/compose"
	"semifractal/internal/core"
	"semifractal/internal/gen"
	"semifractal/internal/render"
)

// Config holds the fixed parameters of a session. It is validated once at
// startup and treated as immutable afterwards.
type Config struct {
	// Size is the side length of the composed square, in cells. Must be
	// a positive odd integer so a unique center cell exists.
	Size int
	// PixelSize is the rendered size of one cell, in pixels.
	PixelSize int
	// Rule is the elementary automaton rule driving the wedge.
	Rule core.Rule
	// Perturber optionally randomizes the wedge; nil means none.
	Perturber gen.Perturber
	// On and Off color live and dead cells.
	On, Off color.Color
}

// DefaultConfig returns the reference configuration: a 511-cell rule-150
// square at one pixel per cell, black on white, unperturbed.
func DefaultConfig() Config {
	return Config{
		Size:      511,
		PixelSize: 1,
		Rule:      core.Rule150,
		On:        color.Black,
		Off:       color.White,
	}
}

// Validate reports configuration faults. All of them are startup errors:
// the parameters never change while the program runs.
func (c Config) Validate() error {
	if c.Size <= 0 || c.Size%2 == 0 {
		return fmt.Errorf("%w: size %d must be a positive odd integer", core.ErrInvalidSize, c.Size)
	}
	if c.PixelSize <= 0 {
		return fmt.Errorf("%w: %d", core.ErrInvalidPixelSize, c.PixelSize)
	}
	return nil
}

// Result is one finished generation. The shell holds exactly one of these
// at a time and replaces it wholesale on the next trigger.
type Result struct {
	Seed  int64
	Grid  *core.Grid
	Image *image.RGBA
}

// Generate runs the full pipeline for one seed: wedge growth, symmetric
// composition, rasterization. Identical (cfg, seed) pairs produce
// bit-identical results.
func Generate(cfg Config, seed int64) (*Result, error) {
	wedge, err := gen.Generate(seed, cfg.Rule, cfg.Size, cfg.Perturber)
	if err != nil {
		return nil, err
	}
	grid, err := compose.Square(wedge, cfg.Size)
	if err != nil {
		return nil, err
	}
	on, off := cfg.On, cfg.Off
	if on == nil {
		on = color.Black
	}
	if off == nil {
		off = color.White
	}
	img, err := render.Rasterize(grid, cfg.PixelSize, on, off)
	if err != nil {
		return nil, err
	}
	return &Result{Seed: seed, Grid: grid, Image: img}, nil
}
