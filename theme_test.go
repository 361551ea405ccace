package navball

import (
	"errors"
	"image/color"
	"testing"
)

func TestComposeThemeSplit(t *testing.T) {
	g := smallGrid(8, 4)
	th := DefaultConfig().Surface
	mask, _ := Full(g.Shape(), 0)

	pm, err := ComposeTheme(Serial, g, th, mask, color.RGBA{255, 255, 255, 255}, 1)
	if err != nil {
		t.Fatal(err)
	}
	for y := range g.Height {
		want := th.Upper
		if y >= g.Height/2 {
			want = th.Lower
		}
		for x := range g.Width {
			got := pm.GetPixel(x, y)
			if got.R != want.R || got.G != want.G || got.B != want.B || got.A != 255 {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestComposeThemeBlend(t *testing.T) {
	g := smallGrid(4, 2)
	th := Theme{Name: "test", Upper: color.RGBA{0x5A, 0x10, 0, 255}, Lower: color.RGBA{A: 255}}
	white := color.RGBA{255, 255, 255, 255}

	full, _ := Full(g.Shape(), 1)
	pm, err := ComposeTheme(Serial, g, th, full, white, 1)
	if err != nil {
		t.Fatal(err)
	}
	if got := pm.GetPixel(0, 0); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("full mask pixel = %v, want grid color", got)
	}

	half, _ := Full(g.Shape(), 0.5)
	pm, err = ComposeTheme(Serial, g, th, half, white, 1)
	if err != nil {
		t.Fatal(err)
	}
	// 90·0.5 + 255·0.5 = 172.5 and 16·0.5 + 255·0.5 = 135.5, truncated.
	if got := pm.GetPixel(1, 0); got.R != 172 || got.G != 135 || got.B != 127 {
		t.Errorf("half mask pixel = %v, want (172, 135, 127)", got)
	}

	// Global alpha scales the mask.
	pm, err = ComposeTheme(Serial, g, th, full, white, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := pm.GetPixel(0, 1); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("alpha 0 pixel = %v, want background", got)
	}
}

func TestComposeThemeGradient(t *testing.T) {
	g := smallGrid(2, 2)
	th := Theme{
		Name:       "gradient",
		Upper:      color.RGBA{A: 255},
		Lower:      color.RGBA{R: 200, G: 100, A: 255},
		Background: BackgroundGradient,
	}
	mask, _ := Full(g.Shape(), 0)
	pm, err := ComposeTheme(Serial, g, th, mask, color.RGBA{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Row centers sit at a quarter and three quarters of the way down.
	if got := pm.GetPixel(0, 0); got.R != 50 || got.G != 25 {
		t.Errorf("row 0 = %v, want (50, 25, 0)", got)
	}
	if got := pm.GetPixel(1, 1); got.R != 150 || got.G != 75 {
		t.Errorf("row 1 = %v, want (150, 75, 0)", got)
	}
}

func TestComposeThemeShapeMismatch(t *testing.T) {
	g := smallGrid(8, 4)
	mask, _ := Full(Shape{Rows: 4, Cols: 7}, 0)

	var se *ShapeError
	_, err := ComposeTheme(Serial, g, DefaultConfig().Space, mask, color.RGBA{}, 1)
	if !errors.As(err, &se) {
		t.Errorf("ComposeTheme error = %v, want *ShapeError", err)
	}
}

func TestThemeError(t *testing.T) {
	err := error(&ThemeError{Theme: "space", Err: ErrEmptyShape})
	if !errors.Is(err, ErrEmptyShape) {
		t.Error("ThemeError does not unwrap")
	}
	if err.Error() != "navball: theme space: navball: empty shape" {
		t.Errorf("Error() = %q", err.Error())
	}
}
