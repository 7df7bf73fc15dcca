//go:build ebiten

package app

import (
	"fmt"
	"log"

	"semifractal/internal/core"
	"semifractal/internal/fractal"
	"semifractal/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game runs the interactive shell: it owns the single current generation
// result and swaps it for a new one on each trigger. One generation runs to
// completion per input event; there is no concurrent work.
type Game struct {
	cfg     fractal.Config
	outDir  string
	painter *render.GridPainter
	cur     *fractal.Result
}

// New constructs a Game and runs the first generation with the given seed.
func New(cfg fractal.Config, seed int64, outDir string) (*Game, error) {
	side := cfg.Size * cfg.PixelSize
	g := &Game{
		cfg:     cfg,
		outDir:  outDir,
		painter: render.NewGridPainter(side, side),
	}
	if err := g.generate(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// generate runs the pipeline for seed, replaces the current result and
// prints the seed to stdout so the picture can be reproduced later.
func (g *Game) generate(seed int64) error {
	res, err := fractal.Generate(g.cfg, seed)
	if err != nil {
		return err
	}
	g.cur = res
	fmt.Println(seed)
	return nil
}

// Update handles the input events: click for a fresh seed, R to replay the
// current one, S to save, Q or Escape to quit.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if err := g.generate(core.NextSeed()); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.generate(g.cur.Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		// A failed save keeps the session and the current buffer
		// intact; the user can retry.
		if path, err := render.SavePNG(g.cur.Image, g.cur.Seed, g.outDir); err != nil {
			log.Printf("save: %v", err)
		} else {
			log.Printf("saved %s", path)
		}
	}
	return nil
}

// Draw renders the current pixel buffer.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.cur.Image)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.painter.Size()
}
