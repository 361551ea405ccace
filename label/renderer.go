package label

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/gogpu/navball"
	"github.com/gogpu/navball/internal/cache"
)

// maskCacheSize bounds the number of rasterized labels kept per Renderer.
const maskCacheSize = 256

type maskKey struct {
	text string
	bold bool
}

// Renderer draws stroke-outlined labels: the outline color stroked to the
// stroke radius first, the fill color on top. Rasterized labels are cached
// per text and weight.
//
// Renderer implements navball.LabelDrawer and is safe for concurrent use.
type Renderer struct {
	cfg           navball.LabelConfig
	regular, bold *Font

	masks *cache.Cache[maskKey, *glyphMasks]
}

// NewRenderer loads the fonts named in cfg, falling back to the embedded
// Go fonts.
func NewRenderer(cfg navball.LabelConfig) *Renderer {
	return NewRendererWithFonts(cfg,
		LoadFontOrDefault(cfg.FontPath, false),
		LoadFontOrDefault(cfg.BoldFontPath, true))
}

// NewRendererWithFonts returns a Renderer using already loaded fonts.
func NewRendererWithFonts(cfg navball.LabelConfig, regular, bold *Font) *Renderer {
	return &Renderer{
		cfg:     cfg,
		regular: regular,
		bold:    bold,
		masks:   cache.New[maskKey, *glyphMasks](maskCacheSize),
	}
}

func (r *Renderer) render(text string, bold bool) (*glyphMasks, error) {
	return r.masks.GetOrCreate(maskKey{text, bold}, func() (*glyphMasks, error) {
		f, size := r.regular, r.cfg.Size
		if bold {
			f, size = r.bold, r.cfg.BoldSize
		}
		o, err := textOutline(f, text, size)
		if err != nil {
			return nil, err
		}
		if o.empty() {
			return nil, fmt.Errorf("label: %q: %w", text, ErrNoGlyphs)
		}
		return renderMasks(o, r.cfg.Stroke), nil
	})
}

// Measure returns the size in pixels of the rasterized label, stroke
// included.
func (r *Renderer) Measure(text string, bold bool) (w, h int, err error) {
	m, err := r.render(text, bold)
	if err != nil {
		return 0, 0, err
	}
	b := m.fill.Bounds()
	return b.Dx(), b.Dy(), nil
}

// DrawLabel draws l onto dst with its ink box centered on (l.X, l.Y).
// Parts falling outside dst are clipped.
func (r *Renderer) DrawLabel(dst draw.Image, l navball.Label) error {
	m, err := r.render(l.Text, l.Bold)
	if err != nil {
		return err
	}

	origin := image.Pt(
		int(math.Round(l.X-m.cx)),
		int(math.Round(l.Y-m.cy)),
	)
	rect := m.fill.Bounds().Add(origin)

	draw.DrawMask(dst, rect, image.NewUniform(r.cfg.Outline), image.Point{},
		m.stroke, image.Point{}, draw.Over)
	draw.DrawMask(dst, rect, image.NewUniform(r.cfg.Fill), image.Point{},
		m.fill, image.Point{}, draw.Over)
	return nil
}

var _ navball.LabelDrawer = (*Renderer)(nil)
