package liveregions

import "github.com/camnca/engine/simgrid"

// Snapshot captures the current pixel grid of g as an immutable Grid ready
// for component and bridging analysis. Defaults to Conn4 connectivity.
// Complexity: O(width*height) time and memory.
func Snapshot(g *simgrid.Dense, opts ...Option) *Grid {
	w, h := g.PixelDims()
	alive := make([]bool, w*h)
	for y := 0; y < h; y++ {
		base := y * w
		for x := 0; x < w; x++ {
			alive[base+x] = g.GetPixel(x, y)
		}
	}

	grid := &Grid{width: w, height: h, alive: alive, conn: Conn4}
	for _, opt := range opts {
		opt(grid)
	}

	return grid
}

// Components returns every maximal connected region of alive cells under
// the Grid's connectivity, flood-filled via BFS. An all-dead grid returns
// an empty slice.
// Complexity: O(width*height*d) time, O(width*height) memory.
func (g *Grid) Components() [][]Cell {
	if g.width == 0 || g.height == 0 {
		return nil
	}

	total := g.width * g.height
	visited := make([]bool, total)
	offsets := neighborOffsets(g.conn)
	var components [][]Cell

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.alive[g.index(x, y)] {
				continue
			}
			start := g.index(x, y)
			if visited[start] {
				continue
			}

			queue := []int{start}
			visited[start] = true
			var comp []Cell

			for qi := 0; qi < len(queue); qi++ {
				idx := queue[qi]
				x0, y0 := g.coordinate(idx)
				comp = append(comp, Cell{X: x0, Y: y0})

				for _, d := range offsets {
					nx, ny := x0+d[0], y0+d[1]
					if !g.inBounds(nx, ny) {
						continue
					}
					if !g.alive[g.index(nx, ny)] {
						continue
					}
					nIdx := g.index(nx, ny)
					if !visited[nIdx] {
						visited[nIdx] = true
						queue = append(queue, nIdx)
					}
				}
			}

			components = append(components, comp)
		}
	}

	return components
}
