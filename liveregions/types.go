package liveregions

import "errors"

// ErrEmptyGrid indicates the snapshotted grid had zero width or height.
var ErrEmptyGrid = errors.New("liveregions: grid must have at least one row and one column")

// ErrNoPath indicates no sequence of cell flips connects src to dst within
// the grid's bounds.
var ErrNoPath = errors.New("liveregions: no path between specified regions")

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies a single pixel coordinate within a snapshotted grid.
type Cell struct {
	X, Y int
}

// Option configures a Grid at Snapshot time.
type Option func(*Grid)

// WithConnectivity overrides the default Conn4 neighbor connectivity.
func WithConnectivity(c Connectivity) Option {
	return func(g *Grid) {
		g.conn = c
	}
}

func neighborOffsets(c Connectivity) [][2]int {
	if c == Conn8 {
		return [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	}

	return [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
}

// Grid is an immutable snapshot of a simgrid.Dense's alive cells, ready for
// component and bridging analysis.
type Grid struct {
	width, height int
	alive         []bool // row-major, alive[y*width+x]
	conn          Connectivity
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

func (g *Grid) coordinate(idx int) (x, y int) {
	return idx % g.width, idx / g.width
}

// Width returns the snapshotted grid's width in cells.
func (g *Grid) Width() int { return g.width }

// Height returns the snapshotted grid's height in cells.
func (g *Grid) Height() int { return g.height }

// IsAlive reports whether (x, y) was alive at snapshot time.
func (g *Grid) IsAlive(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}

	return g.alive[g.index(x, y)]
}
