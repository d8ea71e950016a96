package liveregions

// Bridge finds the minimum number of dead cells that must be flipped alive
// to join any cell of src to any cell of dst, via a 0-1 BFS where moving
// into an already-alive cell costs 0 and into a dead cell costs 1. Returns
// the path of cells from a src cell to a dst cell (inclusive of both
// endpoints) and its total cost. Returns ErrNoPath if dst is unreachable
// within the grid's bounds.
// Complexity: O(width*height*d) time, O(width*height) memory.
func (g *Grid) Bridge(src, dst []Cell) (path []Cell, cost int, err error) {
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrNoPath
	}

	n := g.width * g.height
	dstSet := make(map[int]struct{}, len(dst))
	for _, c := range dst {
		dstSet[g.index(c.X, c.Y)] = struct{}{}
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	capDeque := n + 1
	deque := make([]int, capDeque)
	head, tail := 0, 0

	for _, c := range src {
		i := g.index(c.X, c.Y)
		dist[i] = 0
		head = (head - 1 + capDeque) % capDeque
		deque[head] = i
	}

	offsets := neighborOffsets(g.conn)
	target := -1

	for head != tail {
		u := deque[head]
		head = (head + 1) % capDeque

		if _, ok := dstSet[u]; ok {
			target = u
			break
		}

		x0, y0 := g.coordinate(u)
		for _, d := range offsets {
			nx, ny := x0+d[0], y0+d[1]
			if !g.inBounds(nx, ny) {
				continue
			}
			v := g.index(nx, ny)
			step := 0
			if !g.alive[v] {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					head = (head - 1 + capDeque) % capDeque
					deque[head] = v
				} else {
					deque[tail] = v
					tail = (tail + 1) % capDeque
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}

	var idxPath []int
	for at := target; at >= 0; at = prev[at] {
		idxPath = append([]int{at}, idxPath...)
	}

	path = make([]Cell, len(idxPath))
	for i, idx := range idxPath {
		x, y := g.coordinate(idx)
		path[i] = Cell{X: x, Y: y}
	}
	cost = dist[target]

	return path, cost, nil
}
