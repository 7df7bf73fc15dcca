package app

import (
	"flag"
	"fmt"
	"strconv"

	"semifractal/internal/core"
	"semifractal/internal/fractal"
	"semifractal/internal/gen"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Size    int
	Pixel   int
	Rule    int
	Perturb string
	Flip    float64
	Seed    int64
	Out     string
	ASCII   bool
}

// NewConfig returns a Config populated with the reference defaults.
func NewConfig() *Config {
	return &Config{
		Size:    511,
		Pixel:   1,
		Rule:    150,
		Perturb: "none",
		Flip:    gen.DefaultFlipProbability,
		Out:     ".",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "square side length in cells (positive odd)")
	fs.IntVar(&c.Pixel, "pixel", c.Pixel, "rendered size of one cell in pixels")
	fs.IntVar(&c.Rule, "rule", c.Rule, "elementary automaton rule (0-255)")
	fs.StringVar(&c.Perturb, "perturb", c.Perturb, "perturbation policy (none, uniform, decay, noise)")
	fs.Float64Var(&c.Flip, "p", c.Flip, "perturbation flip probability in [0,1]")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed to reproduce; 0 draws a fresh one")
	fs.StringVar(&c.Out, "out", c.Out, "directory for saved images")
	fs.BoolVar(&c.ASCII, "ascii", c.ASCII, "headless build: print the grid as text instead of saving")
}

// Fractal resolves the flags into a validated pipeline configuration.
func (c *Config) Fractal() (fractal.Config, error) {
	cfg := fractal.DefaultConfig()
	cfg.Size = c.Size
	cfg.PixelSize = c.Pixel
	if c.Rule < 0 || c.Rule > 255 {
		return fractal.Config{}, fmt.Errorf("rule %d out of range 0-255", c.Rule)
	}
	cfg.Rule = core.Rule(c.Rule)

	factory, ok := gen.Perturbers()[c.Perturb]
	if !ok {
		return fractal.Config{}, fmt.Errorf("unknown perturbation policy %q", c.Perturb)
	}
	cfg.Perturber = factory(map[string]string{
		"p": strconv.FormatFloat(c.Flip, 'g', -1, 64),
	})

	if err := cfg.Validate(); err != nil {
		return fractal.Config{}, err
	}
	return cfg, nil
}
