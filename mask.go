package navball

import (
	"image"
	"io"
)

// Mask is an alpha-only raster.
// Values range from 0 (fully transparent) to 255 (fully opaque).
type Mask struct {
	width  int
	height int
	data   []uint8
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Data returns the underlying mask data slice.
func (m *Mask) Data() []uint8 {
	return m.data
}

// ToImage returns the mask as black RGBA pixels carrying the mask values in
// their alpha channel.
func (m *Mask) ToImage() *image.NRGBA {
	img := image.NewNRGBA(m.Bounds())
	for i, a := range m.data {
		img.Pix[i*4+3] = a
	}
	return img
}

// ToAlpha returns the mask as an image.Alpha.
func (m *Mask) ToAlpha() *image.Alpha {
	img := image.NewAlpha(m.Bounds())
	copy(img.Pix, m.data)
	return img
}

// EncodePNG writes the mask to w as an RGBA PNG.
func (m *Mask) EncodePNG(w io.Writer) error {
	return encodePNG(w, m.ToImage())
}

// SavePNG saves the mask to an RGBA PNG file.
func (m *Mask) SavePNG(path string) error {
	return savePNG(path, m.ToImage())
}
