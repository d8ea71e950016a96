package liveregions_test

import (
	"testing"

	"github.com/camnca/engine/kernel"
	"github.com/camnca/engine/liveregions"
	"github.com/camnca/engine/simgrid"
	"github.com/stretchr/testify/require"
)

func TestComponents_BlockStillLifeIsOneRegionOfFour(t *testing.T) {
	t.Parallel()

	g := simgrid.New(kernel.Life(), 3, 3)
	g.SetPixel(2, 2, true)
	g.SetPixel(3, 2, true)
	g.SetPixel(2, 3, true)
	g.SetPixel(3, 3, true)

	snap := liveregions.Snapshot(g)
	comps := snap.Components()
	require.Len(t, comps, 1)
	require.Len(t, comps[0], 4)
}

func TestComponents_AllDeadGridReturnsEmpty(t *testing.T) {
	t.Parallel()

	g := simgrid.New(kernel.Life(), 4, 4)
	snap := liveregions.Snapshot(g)
	require.Empty(t, snap.Components())
}

func TestComponents_Conn8MergesDiagonalNeighbors(t *testing.T) {
	t.Parallel()

	g := simgrid.New(kernel.Life(), 3, 3)
	g.SetPixel(1, 1, true)
	g.SetPixel(2, 2, true)

	conn4 := liveregions.Snapshot(g)
	require.Len(t, conn4.Components(), 2)

	conn8 := liveregions.Snapshot(g, liveregions.WithConnectivity(liveregions.Conn8))
	require.Len(t, conn8.Components(), 1)
}

func TestBridge_FindsMinimalCostBetweenTwoCells(t *testing.T) {
	t.Parallel()

	g := simgrid.New(kernel.Life(), 6, 6)
	g.SetPixel(0, 0, true)
	g.SetPixel(5, 5, true)

	snap := liveregions.Snapshot(g)
	comps := snap.Components()
	require.Len(t, comps, 2)

	path, cost, err := snap.Bridge(comps[0], comps[1])
	require.NoError(t, err)
	require.NotEmpty(t, path)
	require.Equal(t, path[0], comps[0][0])
	require.Equal(t, path[len(path)-1], comps[1][0])
	// Under Conn4, (0,0) to (5,5) crosses 9 dead cells.
	require.Equal(t, 9, cost)
}

func TestBridge_EmptyInputsReturnErrNoPath(t *testing.T) {
	t.Parallel()

	g := simgrid.New(kernel.Life(), 3, 3)
	snap := liveregions.Snapshot(g)

	_, _, err := snap.Bridge(nil, []liveregions.Cell{{X: 0, Y: 0}})
	require.ErrorIs(t, err, liveregions.ErrNoPath)
}
