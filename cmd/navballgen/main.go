// Command navballgen writes the navball textures and the vignette mask.
//
// Usage:
//
//	navballgen [flags]
//
// It writes navball_surface_<W>x<H>.png, navball_space_<W>x<H>.png and
// vignette_<size>.png into the output directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gogpu/navball"
	"github.com/gogpu/navball/label"
)

func main() {
	if err := run(os.Args[1:], navball.DefaultConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "navballgen: %v\n", err)
		os.Exit(1)
	}
}

// run renders the outputs of cfg. Flags only control packaging: the output
// directory, workers, fonts and logging.
func run(args []string, cfg navball.Config) error {
	fs := flag.NewFlagSet("navballgen", flag.ContinueOnError)
	var (
		out      = fs.String("out", ".", "output directory")
		workers  = fs.Int("workers", 0, "row workers (0 = GOMAXPROCS, 1 = serial)")
		font     = fs.String("font", cfg.Labels.FontPath, "label font file")
		boldFont = fs.String("bold-font", cfg.Labels.BoldFontPath, "bold label font file")
		verbose  = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	navball.SetLogger(logger)

	cfg.Labels.FontPath = *font
	cfg.Labels.BoldFontPath = *boldFont
	if err := cfg.Validate(); err != nil {
		return err
	}

	genOpts := []navball.GeneratorOption{navball.WithWorkers(*workers)}
	if cfg.Labels.Enabled {
		genOpts = append(genOpts, navball.WithLabelDrawer(label.NewRenderer(cfg.Labels)))
	}
	gen, err := navball.NewGenerator(cfg, genOpts...)
	if err != nil {
		return err
	}
	defer gen.Close()

	if err := os.MkdirAll(*out, 0o750); err != nil {
		return err
	}
	logger.Debug("rendering",
		"size", cfg.Grid.Shape().String(),
		"origin", cfg.Grid.Origin.String(),
		"labels", cfg.Labels.Enabled)
	return writeAll(gen, *out, logger)
}

type output struct {
	name   string
	render func() (saver, error)
}

type saver interface {
	SavePNG(path string) error
}

// writeAll renders and saves every output concurrently and reports all
// failures together.
func writeAll(gen *navball.Generator, dir string, logger *slog.Logger) error {
	g := gen.Config().Grid
	outputs := []output{
		{
			name:   fmt.Sprintf("navball_surface_%dx%d.png", g.Width, g.Height),
			render: func() (saver, error) { return gen.Surface() },
		},
		{
			name:   fmt.Sprintf("navball_space_%dx%d.png", g.Width, g.Height),
			render: func() (saver, error) { return gen.Space() },
		},
		{
			name:   fmt.Sprintf("vignette_%d.png", gen.Config().Vignette.Size),
			render: func() (saver, error) { return gen.Vignette() },
		},
	}

	errs := make([]error, len(outputs))
	var wg sync.WaitGroup
	for i, o := range outputs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			start := time.Now()
			img, err := o.render()
			if err != nil {
				errs[i] = fmt.Errorf("%s: %w", o.name, err)
				return
			}
			path := filepath.Join(dir, o.name)
			if err := img.SavePNG(path); err != nil {
				errs[i] = fmt.Errorf("%s: %w", o.name, err)
				return
			}
			logger.Info("wrote", "path", path, slog.Duration("elapsed", time.Since(start)))
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}
