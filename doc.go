// Package navball generates equirectangular navball textures: anti-aliased
// latitude/longitude grid lines over a themed sphere background, plus a
// square radial vignette mask.
//
// # Quick Start
//
//	cfg, err := navball.NewConfig(navball.WithSize(2048, 1024))
//	if err != nil {
//		return err
//	}
//	gen, err := navball.NewGenerator(cfg)
//	if err != nil {
//		return err
//	}
//	defer gen.Close()
//
//	surface, err := gen.Surface()
//	if err != nil {
//		return err
//	}
//	err = surface.SavePNG("navball_surface_2048x1024.png")
//
// # Pipeline
//
// Every pixel center maps to a longitude λ ∈ [-π, π) and a latitude
// φ ∈ (-π/2, π/2). Four grid line families (longitude and latitude, major
// and minor) each produce an angular distance field, a pixel distance field,
// a half-width field and a coverage field. The grid mask is the pixel-wise
// maximum of the family coverages.
//
// All intermediate values are Fields of an explicit H×W shape. Combining
// fields of different shapes fails with a *ShapeError instead of
// broadcasting.
//
// # Concurrency
//
// Field computations run row bands on an Executor. Serial runs everything
// on the caller; a Generator created with WithWorkers uses a work-stealing
// pool. Results do not depend on the executor.
//
// # Labels
//
// Degree labels are laid out by LabelConfig.Layout and drawn by a
// LabelDrawer. The label subpackage provides one based on go-text shaping
// and x/image glyph outlines.
//
// # Logging
//
// The package logs through log/slog and is silent by default. See SetLogger.
package navball
