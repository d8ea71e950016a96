package kernel

import "github.com/camnca/engine/array2d"

// Life returns Conway's Game of Life as a Layered kernel: order 1, one
// 3×3 Moore-neighborhood layer, survive on 2 or 3 live neighbors, birth on
// exactly 3.
func Life() *Layered {
	decide := func(center bool, counts []uint16) bool {
		n := counts[0]
		if center {
			return n == 2 || n == 3
		}

		return n == 3
	}

	return NewLayered(decide, []array2d.Array[bool]{MooreMask(3)})
}

// LargerThanLife returns a 17×17-neighborhood rule (order 4) with a single
// filled-square layer (see SquareMask). A cell dies with 33 or fewer live
// neighbors, is born (or survives) with 34-45, dies again with 58-121, and
// is otherwise unchanged — applied in that fixed order, matching the
// original rule's cascade of overlapping interval tests.
func LargerThanLife() *Layered {
	decide := func(center bool, counts []uint16) bool {
		n := counts[0]
		out := center

		if n <= 33 {
			out = false
		}
		if n >= 34 && n <= 45 {
			out = true
		}
		if n >= 58 && n <= 121 {
			out = false
		}

		return out
	}

	mask := SquareMask(17, 3)

	return NewLayered(decide, []array2d.Array[bool]{mask})
}

// MNCA returns a two-layer multi-neighborhood rule (order 4): layer 0 is a
// wide ring (squared radius in [25, 56), population normalized by 108),
// layer 1 a narrow ring (squared radius in [1, 12), population normalized
// by 36). The decider cascades interval tests over the two normalized
// averages, each one able to force the next state true or false; later
// tests in the list win over earlier ones for the same cell.
func MNCA() *Layered {
	const (
		layer0Population = 108.0
		layer1Population = 36.0
	)

	decide := func(center bool, counts []uint16) bool {
		avg0 := float64(counts[0]) / layer0Population
		avg1 := float64(counts[1]) / layer1Population
		out := center

		if avg0 >= 0.210 && avg0 <= 0.220 {
			out = true
		}
		if avg0 >= 0.350 && avg0 <= 0.500 {
			out = false
		}
		if avg0 >= 0.750 && avg0 <= 0.850 {
			out = false
		}
		if avg1 >= 0.100 && avg1 <= 0.280 {
			out = false
		}
		if avg1 >= 0.430 && avg1 <= 0.550 {
			out = true
		}
		if avg0 >= 0.120 && avg0 <= 0.150 {
			out = false
		}

		return out
	}

	layer0 := RingMask(17, 5*5, 8*7)
	layer1 := RingMask(17, 1, 3*4)

	return NewLayered(decide, []array2d.Array[bool]{layer0, layer1})
}
