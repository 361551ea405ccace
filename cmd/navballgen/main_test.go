package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/navball"
)

func smallConfig(t *testing.T, opts ...navball.Option) navball.Config {
	t.Helper()
	opts = append([]navball.Option{
		navball.WithSize(128, 64),
		navball.WithVignette(32, 0.9, 0.99),
	}, opts...)
	cfg, err := navball.NewConfig(opts...)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestRunWritesOutputs(t *testing.T) {
	t.Cleanup(func() { navball.SetLogger(nil) })

	dir := t.TempDir()
	err := run([]string{"-out", dir, "-font", "", "-bold-font", "", "-workers", "2"}, smallConfig(t))
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	for _, name := range []string{
		"navball_surface_128x64.png",
		"navball_space_128x64.png",
		"vignette_32.png",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("missing %s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestRunWithoutLabels(t *testing.T) {
	t.Cleanup(func() { navball.SetLogger(nil) })

	dir := filepath.Join(t.TempDir(), "nested", "out")
	if err := run([]string{"-out", dir, "-workers", "1"}, smallConfig(t, navball.WithoutLabels())); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "vignette_32.png")); err != nil {
		t.Error(err)
	}
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	if err := run([]string{"-width", "10"}, smallConfig(t)); err == nil {
		t.Error("run() with an unknown flag should fail")
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	t.Cleanup(func() { navball.SetLogger(nil) })

	cfg := smallConfig(t)
	cfg.Grid.Width = 0
	if err := run([]string{"-out", t.TempDir()}, cfg); err == nil {
		t.Error("run() with zero width should fail")
	}
}
