package render

import (
	"errors"
	"image/color"
	"testing"

	"semifractal/internal/core"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func TestRasterizeBlocks(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(1, 1, 1)
	g.Set(0, 2, 1)

	img, err := Rasterize(g, 4, black, white)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 12 {
		t.Fatalf("bounds %v, want 12x12", img.Bounds())
	}

	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			want := white
			if g.Get(x/4, y/4) != 0 {
				want = black
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRasterizeSinglePixelCells(t *testing.T) {
	g := core.NewGrid(2, 2)
	g.Set(0, 0, 1)
	g.Set(1, 1, 1)

	img, err := Rasterize(g, 1, black, white)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if img.RGBAAt(0, 0) != black || img.RGBAAt(1, 1) != black {
		t.Fatal("live cells must use the on color")
	}
	if img.RGBAAt(1, 0) != white || img.RGBAAt(0, 1) != white {
		t.Fatal("dead cells must use the off color")
	}
}

func TestRasterizeInvalidPixelSize(t *testing.T) {
	g := core.NewGrid(2, 2)
	for _, s := range []int{0, -1} {
		if _, err := Rasterize(g, s, black, white); !errors.Is(err, core.ErrInvalidPixelSize) {
			t.Fatalf("pixel size %d: got %v, want ErrInvalidPixelSize", s, err)
		}
	}
}

func TestASCII(t *testing.T) {
	g := core.NewGrid(3, 3)
	g.Set(1, 1, 1)
	want := "[   ]\n[ # ]\n[   ]\n"
	if got := ASCII(g); got != want {
		t.Fatalf("ASCII dump:\n%q\nwant:\n%q", got, want)
	}
}
