package eos_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/katalvlaran/gaseos/eos"
)

func BenchmarkPengRobinson_CompressibilityFactor(b *testing.B) {
	c := natgas()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pr, err := eos.NewPengRobinson([]string{"Methane", "Nitrogen", "Carbon dioxide"}, c, c, eos.WithLogger(logger))
	if err != nil {
		b.Fatal(err)
	}
	x := []float64{0.9, 0.05, 0.05}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = pr.CompressibilityFactor(7e6, 300, x); err != nil {
			b.Fatal(err)
		}
	}
}
