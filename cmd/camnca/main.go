// Command camnca steps a small Life grid seeded with a blinker, records its
// live-cell count each generation, and logs the number of recorded rows and
// the variance of the count, exercising the array2d/kernel/simgrid/popmetrics
// packages end to end.
package main

import (
	"log/slog"
	"os"

	"github.com/camnca/engine/kernel"
	"github.com/camnca/engine/popmetrics"
	"github.com/camnca/engine/simgrid"
)

const (
	gridBlocksW = 4
	gridBlocksH = 4
	generations = 8
)

func main() {
	slog.Info("camnca starting", "blocksW", gridBlocksW, "blocksH", gridBlocksH, "generations", generations)

	g := simgrid.New(kernel.Life(), gridBlocksW, gridBlocksH)
	w, h := g.PixelDims()
	cx, cy := w/2, h/2
	g.SetPixel(cx-1, cy, true)
	g.SetPixel(cx, cy, true)
	g.SetPixel(cx+1, cy, true)

	rec := popmetrics.NewRecorder(w * h)
	rec.Record(countAlive(g, w, h))

	for i := 0; i < generations; i++ {
		g.Step()
		rec.Record(countAlive(g, w, h))
	}

	cov, err := rec.Covariance()
	if err != nil {
		slog.Error("camnca: covariance unavailable", "error", err)
		os.Exit(1)
	}

	countVar, err := cov.At(0, 0)
	if err != nil {
		slog.Error("camnca: reading covariance", "error", err)
		os.Exit(1)
	}

	slog.Info("camnca finished", "rows", rec.Len(), "count_variance", countVar)
}

func countAlive(g *simgrid.Dense, w, h int) int {
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if g.GetPixel(x, y) {
				n++
			}
		}
	}

	return n
}
