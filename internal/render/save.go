package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"semifractal/internal/core"
)

// SavePNG writes the image to <dir>/<seed>.png and returns the path. The
// decimal seed is the filename so a saved picture can always be reproduced.
// Failures wrap core.ErrFileWrite and leave no partial file behind.
func SavePNG(img image.Image, seed int64, dir string) (string, error) {
	path := filepath.Join(dir, strconv.FormatInt(seed, 10)+".png")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrFileWrite, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", core.ErrFileWrite, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("%w: %v", core.ErrFileWrite, err)
	}
	return path, nil
}
