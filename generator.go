package navball

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/navball/internal/parallel"
)

// GeneratorOption configures a Generator during creation.
type GeneratorOption func(*generatorOptions)

type generatorOptions struct {
	workers int
	labels  LabelDrawer
}

// WithWorkers sets the number of row workers. Zero or negative uses
// GOMAXPROCS; 1 computes everything on the calling goroutine.
func WithWorkers(n int) GeneratorOption {
	return func(o *generatorOptions) {
		o.workers = n
	}
}

// WithLabelDrawer sets the text renderer used for degree labels. Without
// one, themed textures carry no labels.
func WithLabelDrawer(d LabelDrawer) GeneratorOption {
	return func(o *generatorOptions) {
		o.labels = d
	}
}

// Generator produces the navball textures and the vignette for one Config.
//
// Generator is safe for concurrent use; each output is computed by its own
// pipeline run.
type Generator struct {
	cfg    Config
	pool   *parallel.WorkerPool
	ex     Executor
	labels LabelDrawer
}

// NewGenerator validates cfg and returns a Generator. Call Close to stop its
// workers.
func NewGenerator(cfg Config, opts ...GeneratorOption) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var o generatorOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := &Generator{cfg: cfg, ex: Serial, labels: o.labels}
	if o.workers != 1 {
		g.pool = parallel.NewWorkerPool(o.workers)
		g.ex = g.pool
	}
	return g, nil
}

// Close stops the worker pool. Close is safe to call multiple times.
func (g *Generator) Close() {
	if g.pool != nil {
		g.pool.Close()
	}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config { return g.cfg }

// Grid returns the grid kernel bound to the generator's workers.
func (g *Generator) Grid() *Grid {
	return NewGrid(g.cfg.Grid, g.ex)
}

// Surface renders the planetary-surface themed texture.
func (g *Generator) Surface() (*Pixmap, error) {
	return g.Theme(g.cfg.Surface)
}

// Space renders the space themed texture.
func (g *Generator) Space() (*Pixmap, error) {
	return g.Theme(g.cfg.Space)
}

// Theme renders a themed texture: grid mask, background blend, then labels.
func (g *Generator) Theme(t Theme) (*Pixmap, error) {
	start := time.Now()

	mask, err := g.Grid().Mask()
	if err != nil {
		return nil, &ThemeError{Theme: t.Name, Err: err}
	}
	pm, err := ComposeTheme(g.ex, g.cfg.Grid, t, mask, g.cfg.GridColor, g.cfg.GridAlpha)
	if err != nil {
		return nil, &ThemeError{Theme: t.Name, Err: err}
	}

	labels := g.cfg.Labels.Layout(g.cfg.Grid)
	switch {
	case len(labels) == 0:
	case g.labels == nil:
		Logger().Debug("no label drawer, skipping labels", "theme", t.Name, "labels", len(labels))
	default:
		for _, l := range labels {
			if err := g.labels.DrawLabel(pm, l); err != nil {
				return nil, &ThemeError{Theme: t.Name, Err: fmt.Errorf("label %q: %w", l.Text, err)}
			}
		}
	}

	Logger().Debug("theme rendered",
		"theme", t.Name,
		"labels", len(labels),
		slog.Duration("elapsed", time.Since(start)))
	return pm, nil
}

// Vignette renders the square vignette alpha mask.
func (g *Generator) Vignette() (*Mask, error) {
	return Vignette(g.ex, g.cfg.Vignette)
}
