package label

import "errors"

// Sentinel errors for the label package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("label: empty font data")

	// ErrNoGlyphs is returned when a string shapes to no glyphs.
	ErrNoGlyphs = errors.New("label: text has no glyphs")
)
