package navball

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestPixmapSavePNG(t *testing.T) {
	pm := NewPixmap(4, 3)
	pm.SetPixel(1, 2, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("decoded size %v", b)
	}
	got := color.NRGBAModel.Convert(img.At(1, 2)).(color.NRGBA)
	if got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("pixel = %v", got)
	}

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestSavePNGMissingDir(t *testing.T) {
	pm := NewPixmap(1, 1)
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "nope", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}

func TestMaskEncodePNG(t *testing.T) {
	m, err := Vignette(Serial, VignetteConfig{Size: 8, Inner: 0.1, Outer: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := m.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	_, _, _, a := img.At(0, 0).RGBA()
	if a != 0xffff {
		t.Errorf("corner alpha = %#x, want opaque", a)
	}
	if _, _, _, a := img.At(4, 4).RGBA(); a == 0xffff {
		t.Error("center should not be opaque")
	}
}

func TestPixmapDrawImage(t *testing.T) {
	pm := NewPixmap(2, 2)
	pm.Set(0, 1, color.RGBA{R: 255, A: 255})
	if got := pm.GetPixel(0, 1); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("Set/GetPixel = %v", got)
	}
	if got := pm.GetPixel(5, 5); got != (color.NRGBA{}) {
		t.Errorf("out of range = %v, want transparent", got)
	}
}
