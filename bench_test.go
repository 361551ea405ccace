package navball

import (
	"testing"

	"github.com/gogpu/navball/internal/parallel"
)

func BenchmarkGridMask(b *testing.B) {
	g := smallGrid(1024, 512)

	b.Run("serial", func(b *testing.B) {
		grid := NewGrid(g, Serial)
		b.ReportAllocs()
		for b.Loop() {
			if _, err := grid.Mask(); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run("pool", func(b *testing.B) {
		pool := parallel.NewWorkerPool(0)
		defer pool.Close()
		grid := NewGrid(g, pool)
		b.ReportAllocs()
		for b.Loop() {
			if _, err := grid.Mask(); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkSampleAt(b *testing.B) {
	grid := NewGrid(DefaultConfig().Grid, nil)
	b.ReportAllocs()
	var sink float64
	for i := 0; b.Loop(); i++ {
		sink += grid.SampleAt(float64(i%628)/100-3.14, 0.3)
	}
	_ = sink
}

func BenchmarkVignette(b *testing.B) {
	v := DefaultConfig().Vignette
	b.ReportAllocs()
	for b.Loop() {
		if _, err := Vignette(Serial, v); err != nil {
			b.Fatal(err)
		}
	}
}
