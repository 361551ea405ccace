package navball

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/navball/internal/parallel"
)

func smallGrid(w, h int) GridConfig {
	g := DefaultConfig().Grid
	g.Width, g.Height = w, h
	return g
}

func TestComputeShapes(t *testing.T) {
	g := smallGrid(64, 32)
	out, err := NewGrid(g, nil).Compute()
	if err != nil {
		t.Fatal(err)
	}

	check := func(name string, f *Field) {
		t.Helper()
		if f == nil {
			t.Fatalf("%s is nil", name)
		}
		if f.Shape() != g.Shape() {
			t.Errorf("%s shape %v, want %v", name, f.Shape(), g.Shape())
		}
	}
	check("lon", out.Lon)
	check("lat", out.Lat)
	check("mask", out.Mask)
	for _, ff := range out.Families {
		if !ff.Enabled {
			t.Fatalf("%v disabled with default steps", ff.Family)
		}
		check(ff.Family.String()+" distance", ff.Distance)
		check(ff.Family.String()+" distance px", ff.DistancePx)
		check(ff.Family.String()+" width", ff.Width)
		check(ff.Family.String()+" coverage", ff.Coverage)
	}

	lo, hi := out.Mask.Range()
	if lo < 0 || hi > 1 {
		t.Errorf("mask range [%v, %v] outside [0, 1]", lo, hi)
	}
}

func TestMaskIsMaxOfFamilies(t *testing.T) {
	g := smallGrid(96, 48)
	out, err := NewGrid(g, nil).Compute()
	if err != nil {
		t.Fatal(err)
	}
	for y := range g.Height {
		for x := range g.Width {
			var want float64
			for _, ff := range out.Families {
				want = max(want, ff.Coverage.At(y, x))
			}
			if got := out.Mask.At(y, x); got != want {
				t.Fatalf("mask at (%d,%d) = %v, want max of families %v", y, x, got, want)
			}
		}
	}
}

func TestDisabledFamily(t *testing.T) {
	g := smallGrid(64, 32)
	g.LonMinor = NoStep

	out, err := NewGrid(g, nil).Compute()
	if err != nil {
		t.Fatal(err)
	}
	ff := out.Families[2]
	if ff.Enabled || ff.Distance != nil || ff.Width != nil || ff.Coverage != nil {
		t.Errorf("disabled lon-minor has fields: %+v", ff)
	}
	if ff.Family.String() != "lon-minor" {
		t.Errorf("family = %v, want lon-minor", ff.Family)
	}
	for y := range g.Height {
		for x := range g.Width {
			want := max(out.Families[0].Coverage.At(y, x),
				out.Families[1].Coverage.At(y, x),
				out.Families[3].Coverage.At(y, x))
			if out.Mask.At(y, x) != want {
				t.Fatalf("mask at (%d,%d) includes the disabled family", y, x)
			}
		}
	}
}

func TestAllFamiliesDisabled(t *testing.T) {
	g := smallGrid(16, 8)
	g.LonMajor, g.LatMajor, g.LonMinor, g.LatMinor = NoStep, NoStep, NoStep, NoStep

	mask, err := NewGrid(g, nil).Mask()
	if err != nil {
		t.Fatal(err)
	}
	if lo, hi := mask.Range(); lo != 0 || hi != 0 {
		t.Errorf("mask range [%v, %v], want all zero", lo, hi)
	}
	if v := NewGrid(g, nil).SampleAt(0, 0); v != 0 {
		t.Errorf("SampleAt = %v, want 0", v)
	}
}

func TestComputeEmpty(t *testing.T) {
	_, err := NewGrid(smallGrid(0, 8), nil).Compute()
	if !errors.Is(err, ErrEmptyShape) {
		t.Errorf("Compute() error = %v, want ErrEmptyShape", err)
	}
}

// At the default resolution every major line and the equator reach full
// intensity on the line itself.
func TestSampleAtLines(t *testing.T) {
	grid := NewGrid(DefaultConfig().Grid, nil)

	for _, lon := range []float64{-math.Pi, -math.Pi / 2, 0, math.Pi / 2} {
		for _, lat := range []float64{-1.2, -0.4, 0.3, 1.0} {
			if v := grid.SampleAt(lon, lat); v < 0.9 {
				t.Errorf("SampleAt(%v, %v) = %v, want >= 0.9", lon, lat, v)
			}
		}
	}
	for _, lon := range []float64{-2.9, -0.4, 0.7, 2.2} {
		if v := grid.SampleAt(lon, 0); v < 0.9 {
			t.Errorf("SampleAt(%v, equator) = %v, want >= 0.9", lon, v)
		}
	}

	// Midway between minor lines is far beyond every line width.
	mid := 7.5 * degToRad
	if v := grid.SampleAt(mid, mid); v != 0 {
		t.Errorf("SampleAt between lines = %v, want 0", v)
	}
}

func TestSampleAtWraps(t *testing.T) {
	grid := NewGrid(DefaultConfig().Grid, nil)
	if a, b := grid.SampleAt(0.1, 0.2), grid.SampleAt(0.1+2*math.Pi, 0.2); !almostEqual(a, b, 1e-9) {
		t.Errorf("SampleAt not periodic in longitude: %v vs %v", a, b)
	}
}

func TestSampleAtMatchesMask(t *testing.T) {
	g := smallGrid(128, 64)
	grid := NewGrid(g, nil)
	out, err := grid.Compute()
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < g.Height; y += 3 {
		for x := 0; x < g.Width; x += 5 {
			want := out.Mask.At(y, x)
			got := grid.SampleAt(out.Lon.At(y, x), out.Lat.At(y, x))
			if !almostEqual(got, want, 1e-12) {
				t.Fatalf("SampleAt at pixel (%d,%d) = %v, mask %v", y, x, got, want)
			}
		}
	}
}

func TestMaskPixels(t *testing.T) {
	g := smallGrid(512, 256)
	mask, err := NewGrid(g, nil).Mask()
	if err != nil {
		t.Fatal(err)
	}

	// Column 256 is half a pixel east of the prime meridian.
	if v := mask.At(60, 256); v < 0.5 {
		t.Errorf("mask next to prime meridian = %v, want > 0.5", v)
	}
	// Row 128 is half a pixel south of the equator.
	if v := mask.At(128, 40); v < 0.5 {
		t.Errorf("mask next to equator = %v, want > 0.5", v)
	}
	// About 7.5 degrees from the nearest line on both axes.
	if v := mask.At(117, 10); v != 0 {
		t.Errorf("mask between lines = %v, want 0", v)
	}
}

func TestMaskSymmetry(t *testing.T) {
	g := smallGrid(96, 48)
	mask, err := NewGrid(g, nil).Mask()
	if err != nil {
		t.Fatal(err)
	}
	for y := range g.Height {
		for x := range g.Width {
			v := mask.At(y, x)
			if h := mask.At(y, g.Width-1-x); !almostEqual(v, h, 1e-9) {
				t.Fatalf("not symmetric across the prime meridian at (%d,%d): %v vs %v", y, x, v, h)
			}
			if w := mask.At(g.Height-1-y, x); !almostEqual(v, w, 1e-9) {
				t.Fatalf("not symmetric across the equator at (%d,%d): %v vs %v", y, x, v, w)
			}
		}
	}
}

func TestOriginBottomFlips(t *testing.T) {
	top := smallGrid(48, 24)
	top.LatMajor = StepDegrees(40) // breaks north/south symmetry
	bottom := top
	bottom.Origin = OriginBottom

	a, err := NewGrid(top, nil).Mask()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGrid(bottom, nil).Mask()
	if err != nil {
		t.Fatal(err)
	}
	for y := range top.Height {
		for x := range top.Width {
			if !almostEqual(a.At(y, x), b.At(top.Height-1-y, x), 1e-9) {
				t.Fatalf("bottom origin is not a vertical flip at (%d,%d)", y, x)
			}
		}
	}
}

func TestSeamOffsetRotates(t *testing.T) {
	g := smallGrid(72, 36)
	g.SeamOffset = 60 * degToRad
	out, err := NewGrid(g, nil).Compute()
	if err != nil {
		t.Fatal(err)
	}
	// Column 0 now starts at -120 degrees instead of -180.
	want := -120*degToRad + math.Pi/72
	if got := out.Lon.At(0, 0); !almostEqual(got, want, 1e-9) {
		t.Errorf("lon at column 0 = %v, want %v", got, want)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	g := smallGrid(200, 100)
	serial, err := NewGrid(g, Serial).Mask()
	if err != nil {
		t.Fatal(err)
	}

	pool := parallel.NewWorkerPool(4)
	defer pool.Close()
	par, err := NewGrid(g, pool).Mask()
	if err != nil {
		t.Fatal(err)
	}
	for y := range g.Height {
		for x := range g.Width {
			if serial.At(y, x) != par.At(y, x) {
				t.Fatalf("parallel mask differs at (%d,%d)", y, x)
			}
		}
	}
}

func TestMaskReturnsToZero(t *testing.T) {
	if testing.Short() {
		t.Skip("full-size grid")
	}
	g := DefaultConfig().Grid
	pool := parallel.NewWorkerPool(0)
	defer pool.Close()
	out, err := NewGrid(g, pool).Compute()
	if err != nil {
		t.Fatal(err)
	}
	w, h := g.Width, g.Height

	var cols []int
	for _, lon := range []float64{-math.Pi, -math.Pi / 2, 0, math.Pi / 2} {
		c := int(math.Round((lon + math.Pi) / twoPi * float64(w)))
		for dx := -40; dx <= 40; dx++ {
			cols = append(cols, ((c+dx)%w+w)%w)
		}
	}

	zeros := 0
	check := func(y, x int) {
		allOff := true
		for _, ff := range out.Families {
			if !ff.Enabled {
				continue
			}
			d, width := ff.DistancePx.At(y, x), ff.Width.At(y, x)
			if d < width {
				allOff = false
				continue
			}
			zeros++
			if c := ff.Coverage.At(y, x); c != 0 {
				t.Fatalf("%v at (%d,%d): coverage %g with distance %v >= width %v",
					ff.Family, y, x, c, d, width)
			}
		}
		if m := out.Mask.At(y, x); allOff && m != 0 {
			t.Fatalf("mask at (%d,%d) = %g away from every line", y, x, m)
		}
	}
	for y := range h {
		for _, x := range cols {
			check(y, x)
		}
	}
	for y := h/2 - 40; y <= h/2+40; y++ {
		for x := range w {
			check(y, x)
		}
	}
	if zeros == 0 {
		t.Fatal("no pixel beyond a line's width was scanned")
	}
}

func TestSeamDistanceContinuous(t *testing.T) {
	g := smallGrid(360, 180)
	out, err := NewGrid(g, nil).Compute()
	if err != nil {
		t.Fatal(err)
	}
	last := g.Width - 1
	for _, ff := range out.Families {
		if !ff.Enabled || ff.Family.Axis != AxisLon {
			continue
		}
		for y := range g.Height {
			a, b := ff.DistancePx.At(y, 0), ff.DistancePx.At(y, last)
			if !almostEqual(a, b, 1e-9) {
				t.Fatalf("%v row %d: distance %v at column 0, %v at column %d", ff.Family, y, a, b, last)
			}
			if a, b := ff.Coverage.At(y, 0), ff.Coverage.At(y, last); !almostEqual(a, b, 1e-9) {
				t.Fatalf("%v row %d: coverage %v at column 0, %v at column %d", ff.Family, y, a, b, last)
			}
		}
	}
}
