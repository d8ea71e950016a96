package memo_test

import (
	"testing"

	"github.com/camnca/engine/kernel"
	"github.com/camnca/engine/memo"
	"github.com/camnca/engine/simgrid"
	"github.com/stretchr/testify/require"
)

func TestWrapper_TransparentWithBareKernel(t *testing.T) {
	t.Parallel()

	bare := simgrid.New(kernel.Life(), 5, 5)
	wrapped := simgrid.New(memo.New(kernel.Life()), 5, 5)

	seed := [][2]int{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
	for _, c := range seed {
		bare.SetPixel(c[0], c[1], true)
		wrapped.SetPixel(c[0], c[1], true)
	}

	for i := 0; i < 6; i++ {
		bare.Step()
		wrapped.Step()

		w, h := bare.PixelDims()
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				require.Equalf(t, bare.GetPixel(x, y), wrapped.GetPixel(x, y),
					"generation %d cell (%d,%d) diverged", i, x, y)
			}
		}
	}
}

func TestWrapper_HitCountIsMonotonicAndGrowsOnRepetition(t *testing.T) {
	t.Parallel()

	w := memo.New(kernel.Life())
	g := simgrid.New(w, 4, 4)

	// Blinker: period 2, so every other step repeats an already-seen
	// 4-tuple set, guaranteeing hits accumulate.
	g.SetPixel(3, 4, true)
	g.SetPixel(4, 4, true)
	g.SetPixel(5, 4, true)

	var last uint64
	for i := 0; i < 12; i++ {
		g.Step()
		stats := w.Stats()
		require.GreaterOrEqual(t, stats.Hits, last)
		last = stats.Hits
	}
	require.Greater(t, last, uint64(0))
}

func TestWrapper_GCInvariant_ReachableIdsSurvive(t *testing.T) {
	t.Parallel()

	// The blinker's two phases use four distinct block contents, every one
	// of them referenced by the solutions LRU. A threshold of 3 makes GC run
	// after every Exec; none of the four may be dropped.
	w := memo.New(kernel.Life(), memo.WithGCThreshold(3))
	g := simgrid.New(w, 4, 4)

	g.SetPixel(3, 4, true)
	g.SetPixel(4, 4, true)
	g.SetPixel(5, 4, true)

	for i := 0; i < 20; i++ {
		g.Step()
	}

	stats := w.Stats()
	require.Equal(t, 4, stats.ContentIDs)
	require.Equal(t, stats.ContentIDs, stats.Values)
}

func TestWrapper_RespectsCapacityOption(t *testing.T) {
	t.Parallel()

	w := memo.New(kernel.Life(), memo.WithCapacity(2))
	g := simgrid.New(w, 8, 8)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			g.SetPixel(i, j, (i+j)%3 == 0)
		}
	}

	for i := 0; i < 10; i++ {
		g.Step()
	}

	require.LessOrEqual(t, w.Stats().Solutions, 2)
}
