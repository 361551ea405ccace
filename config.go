package navball

import (
	"fmt"
	"image/color"
	"math"
)

// Origin selects which pole row 0 of the texture belongs to.
type Origin int

const (
	// OriginTop puts the north pole on row 0 (UV origin top-left).
	OriginTop Origin = iota
	// OriginBottom puts the south pole on row 0.
	OriginBottom
)

func (o Origin) String() string {
	switch o {
	case OriginTop:
		return "top"
	case OriginBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Origin(%d)", int(o))
	}
}

// Step is an optional grid step angle. The zero value is absent, which
// disables the grid line family that uses it.
type Step struct {
	rad     float64
	present bool
}

// NoStep is the absent step.
var NoStep = Step{}

// StepDegrees returns a step of d degrees. A non-positive d yields NoStep.
func StepDegrees(d float64) Step {
	if !(d > 0) {
		return NoStep
	}
	return Step{rad: d * math.Pi / 180, present: true}
}

// Radians returns the step in radians and whether it is present.
func (s Step) Radians() (float64, bool) { return s.rad, s.present }

// Degrees returns the step in degrees, or 0 if absent.
func (s Step) Degrees() float64 { return s.rad * 180 / math.Pi }

// GridConfig holds the grid-line mask tunables.
type GridConfig struct {
	Width, Height int
	Origin        Origin

	// SeamOffset rotates where the ±π longitude discontinuity falls, in radians.
	SeamOffset float64

	LonMajor, LatMajor Step
	LonMinor, LatMinor Step

	// MajorWidth and MinorWidth are anti-aliasing half-widths in pixels.
	MajorWidth, MinorWidth float64

	// EquatorScale widens the latitude-major line at φ = 0.
	EquatorScale float64
	// MeridianScale widens the longitude-major line at λ = 0 and |λ| = π/2.
	MeridianScale float64

	PoleTaper  bool
	TaperFloor float64

	// AxisEpsilon is the angular tolerance of exact-axis detection.
	AxisEpsilon float64
}

// Shape returns the H×W shape of every grid field.
func (c GridConfig) Shape() Shape { return Shape{Rows: c.Height, Cols: c.Width} }

// Background selects how a theme fills the sphere behind the grid.
type Background int

const (
	// BackgroundSplit paints the northern hemisphere (φ ≥ 0) in Upper and the
	// southern hemisphere in Lower.
	BackgroundSplit Background = iota
	// BackgroundGradient blends linearly from Upper at the north pole to Lower
	// at the south pole.
	BackgroundGradient
)

// Theme is a background policy with its two colors.
type Theme struct {
	Name         string
	Upper, Lower color.RGBA
	Background   Background
}

// LabelConfig places and styles the degree labels.
type LabelConfig struct {
	Enabled bool

	// FontPath and BoldFontPath name TTF/OTF files. Empty or unreadable
	// paths fall back to the embedded Go fonts.
	FontPath, BoldFontPath string
	Size, BoldSize         float64
	Stroke                 float64
	Fill, Outline          color.RGBA

	// LonStep and LatStep are the label spacings in whole degrees.
	LonStep, LatStep int
	// EquatorOffset lifts longitude labels above the equator, in pixels.
	EquatorOffset float64
	// EdgeInset is the distance of latitude label columns from the right edge
	// and from the center, in pixels.
	EdgeInset float64
	Cardinals bool
}

// VignetteConfig describes the square radial vignette mask.
type VignetteConfig struct {
	Size         int
	Inner, Outer float64
}

// Config is the complete, immutable generator configuration.
type Config struct {
	Grid      GridConfig
	GridColor color.RGBA
	GridAlpha float64
	Surface   Theme
	Space     Theme
	Labels    LabelConfig
	Vignette  VignetteConfig
}

// DefaultConfig returns the configuration of the shipped navball textures.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Width:         2048,
			Height:        1024,
			Origin:        OriginTop,
			SeamOffset:    0,
			LonMajor:      StepDegrees(60),
			LatMajor:      StepDegrees(30),
			LonMinor:      StepDegrees(15),
			LatMinor:      StepDegrees(15),
			MajorWidth:    3.8,
			MinorWidth:    3.1,
			EquatorScale:  2.0,
			MeridianScale: 1.8,
			PoleTaper:     true,
			TaperFloor:    0.2,
			AxisEpsilon:   1e-6,
		},
		GridColor: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		GridAlpha: 1.0,
		Surface: Theme{
			Name:  "surface",
			Upper: mustHex("5AA7FF"),
			Lower: mustHex("8B6A3B"),
		},
		Space: Theme{
			Name:  "space",
			Upper: mustHex("101010"),
			Lower: mustHex("404040"),
		},
		Labels: LabelConfig{
			Enabled:       true,
			FontPath:      "DejaVuSans.ttf",
			BoldFontPath:  "DejaVuSans-Bold.ttf",
			Size:          60,
			BoldSize:      64,
			Stroke:        4,
			Fill:          color.RGBA{R: 255, G: 255, B: 255, A: 255},
			Outline:       color.RGBA{A: 255},
			LonStep:       30,
			LatStep:       15,
			EquatorOffset: 18,
			EdgeInset:     80,
		},
		Vignette: VignetteConfig{
			Size:  512,
			Inner: 0.90,
			Outer: 0.99,
		},
	}
}

// NewConfig applies opts to DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports the first configuration value out of range.
func (c Config) Validate() error {
	g := c.Grid
	switch {
	case g.Width <= 0 || g.Height <= 0:
		return fmt.Errorf("%w: grid size %dx%d", ErrInvalidConfig, g.Width, g.Height)
	case g.Origin != OriginTop && g.Origin != OriginBottom:
		return fmt.Errorf("%w: origin %v", ErrInvalidConfig, g.Origin)
	case math.IsNaN(g.SeamOffset) || math.IsInf(g.SeamOffset, 0):
		return fmt.Errorf("%w: seam offset %v", ErrInvalidConfig, g.SeamOffset)
	case !nonNegative(g.MajorWidth) || !nonNegative(g.MinorWidth):
		return fmt.Errorf("%w: line widths %v, %v", ErrInvalidConfig, g.MajorWidth, g.MinorWidth)
	case !(g.EquatorScale > 0) || !(g.MeridianScale > 0):
		return fmt.Errorf("%w: emphasis scales must be positive", ErrInvalidConfig)
	case !(g.TaperFloor > 0 && g.TaperFloor <= 1):
		return fmt.Errorf("%w: taper floor %v not in (0, 1]", ErrInvalidConfig, g.TaperFloor)
	case !nonNegative(g.AxisEpsilon):
		return fmt.Errorf("%w: axis epsilon %v", ErrInvalidConfig, g.AxisEpsilon)
	case !(c.GridAlpha >= 0 && c.GridAlpha <= 1):
		return fmt.Errorf("%w: grid alpha %v not in [0, 1]", ErrInvalidConfig, c.GridAlpha)
	}

	l := c.Labels
	if l.Enabled {
		switch {
		case !(l.Size > 0) || !(l.BoldSize > 0) || math.IsInf(l.Size, 1) || math.IsInf(l.BoldSize, 1):
			return fmt.Errorf("%w: label sizes %v, %v", ErrInvalidConfig, l.Size, l.BoldSize)
		case !nonNegative(l.Stroke):
			return fmt.Errorf("%w: label stroke %v", ErrInvalidConfig, l.Stroke)
		case !nonNegative(l.EquatorOffset) || !nonNegative(l.EdgeInset):
			return fmt.Errorf("%w: label offsets %v, %v", ErrInvalidConfig, l.EquatorOffset, l.EdgeInset)
		case l.LonStep <= 0 || l.LatStep <= 0:
			return fmt.Errorf("%w: label steps must be positive", ErrInvalidConfig)
		}
	}

	v := c.Vignette
	switch {
	case v.Size <= 0:
		return fmt.Errorf("%w: vignette size %d", ErrInvalidConfig, v.Size)
	case !(v.Inner < v.Outer):
		return fmt.Errorf("%w: vignette inner %v must be below outer %v", ErrInvalidConfig, v.Inner, v.Outer)
	}
	return nil
}

// nonNegative reports whether x is finite and not below zero. NaN fails.
func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}
