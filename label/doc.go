// Package label draws the degree labels of a navball texture.
//
// Labels are shaped with go-text/typesetting, their glyph outlines are taken
// from golang.org/x/image/font/sfnt and rasterized with
// golang.org/x/image/vector. The outline stroke is the glyph contours
// expanded with round joins and filled the same way.
//
//	r := label.NewRenderer(cfg.Labels)
//	gen, err := navball.NewGenerator(cfg, navball.WithLabelDrawer(r))
//
// Bare font file names are also looked up in the system font directories.
// Fonts that cannot be loaded are replaced by the embedded Go fonts, and the
// replacement is logged through navball.Logger at warn level.
package label
