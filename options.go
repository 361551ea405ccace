package navball

import "image/color"

// Option configures a Config during creation.
//
// Example:
//
//	cfg, err := navball.NewConfig(
//	    navball.WithSize(1024, 512),
//	    navball.WithLonSteps(navball.StepDegrees(45), navball.NoStep),
//	)
type Option func(*Config)

// WithSize sets the texture width and height in pixels.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Grid.Width = width
		c.Grid.Height = height
	}
}

// WithOrigin sets the vertical-origin convention.
func WithOrigin(o Origin) Option {
	return func(c *Config) {
		c.Grid.Origin = o
	}
}

// WithSeamOffsetDegrees rotates the longitude seam by deg degrees.
func WithSeamOffsetDegrees(deg float64) Option {
	return func(c *Config) {
		c.Grid.SeamOffset = deg * degToRad
	}
}

// WithLonSteps sets the major and minor longitude steps.
func WithLonSteps(major, minor Step) Option {
	return func(c *Config) {
		c.Grid.LonMajor = major
		c.Grid.LonMinor = minor
	}
}

// WithLatSteps sets the major and minor latitude steps.
func WithLatSteps(major, minor Step) Option {
	return func(c *Config) {
		c.Grid.LatMajor = major
		c.Grid.LatMinor = minor
	}
}

// WithLineWidths sets the anti-aliasing half-widths, in pixels, per tier.
func WithLineWidths(major, minor float64) Option {
	return func(c *Config) {
		c.Grid.MajorWidth = major
		c.Grid.MinorWidth = minor
	}
}

// WithEmphasis sets the equator and prime-meridian width scales.
func WithEmphasis(equator, meridian float64) Option {
	return func(c *Config) {
		c.Grid.EquatorScale = equator
		c.Grid.MeridianScale = meridian
	}
}

// WithPoleTaper enables or disables pole tapering with the given floor.
func WithPoleTaper(enabled bool, floor float64) Option {
	return func(c *Config) {
		c.Grid.PoleTaper = enabled
		c.Grid.TaperFloor = floor
	}
}

// WithAxisEpsilon sets the exact-axis detection tolerance in radians.
func WithAxisEpsilon(eps float64) Option {
	return func(c *Config) {
		c.Grid.AxisEpsilon = eps
	}
}

// WithGrid sets the grid line color and global alpha.
func WithGrid(col color.RGBA, alpha float64) Option {
	return func(c *Config) {
		c.GridColor = col
		c.GridAlpha = alpha
	}
}

// WithThemes replaces the surface and space themes.
func WithThemes(surface, space Theme) Option {
	return func(c *Config) {
		c.Surface = surface
		c.Space = space
	}
}

// WithLabels replaces the label configuration.
func WithLabels(l LabelConfig) Option {
	return func(c *Config) {
		c.Labels = l
	}
}

// WithoutLabels disables label rendering.
func WithoutLabels() Option {
	return func(c *Config) {
		c.Labels.Enabled = false
	}
}

// WithFonts sets the regular and bold label font files.
func WithFonts(regular, bold string) Option {
	return func(c *Config) {
		c.Labels.FontPath = regular
		c.Labels.BoldFontPath = bold
	}
}

// WithVignette sets the vignette size and radii.
func WithVignette(size int, inner, outer float64) Option {
	return func(c *Config) {
		c.Vignette = VignetteConfig{Size: size, Inner: inner, Outer: outer}
	}
}
