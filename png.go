package navball

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// encodePNG writes img to w with default compression.
func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("navball: encode png: %w", err)
	}
	return nil
}

// savePNG encodes img into a temporary file next to path and renames it into
// place, so a reader never sees a partial image.
func savePNG(path string, img image.Image) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), ".navball-*.png")
	if err != nil {
		return fmt.Errorf("navball: save %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = encodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("navball: save %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("navball: save %s: %w", path, err)
	}
	return nil
}
