package kernel

import "github.com/camnca/engine/array2d"

// RingMask builds a width×width boolean mask where cell (x, y) is true iff
// its squared distance from the mask's center falls in [innerSq, outerSq).
// width must be odd so a center cell exists. This mirrors the teacher
// corpus's named-constructor style (builder.Grid, builder.Star, ...)
// applied to mask construction instead of graph construction, and directly
// replicates the ring-drawing routine the original rule set used to build
// its Moore-neighborhood and MNCA layer masks.
func RingMask(width, innerSq, outerSq int) array2d.Array[bool] {
	if width%2 == 0 {
		panic("kernel: RingMask width must be odd")
	}

	m := array2d.New[bool](width, width)
	half := width / 2
	for y := -half; y <= half; y++ {
		for x := -half; x <= half; x++ {
			r2 := x*x + y*y
			if r2 >= innerSq && r2 < outerSq {
				m.Set(x+half, y+half, true)
			}
		}
	}

	return m
}

// MooreMask builds the width×width mask of every cell except the center —
// the Moore (8-connectivity style) neighborhood ring, generalized to
// arbitrary odd width. MooreMask(3) is Conway's Life neighborhood.
func MooreMask(width int) array2d.Array[bool] {
	// Excluding r2=0 (the center) and admitting everything up to the
	// farthest corner covers every non-center cell.
	half := width / 2

	return RingMask(width, 1, 2*half*half+1)
}

// SquareMask builds a width×width mask where the centered square of side
// width-2*margin is true and the surrounding margin is false. This
// replicates the literal 11×11-filled-in-17×17 mask the Larger-than-Life
// rule used (see DESIGN.md for the width/margin discrepancy this resolves
// against spec.md's "13x13 disk-ish" description).
func SquareMask(width, margin int) array2d.Array[bool] {
	if margin < 0 || width-2*margin <= 0 {
		panic("kernel: SquareMask margin leaves no interior")
	}

	m := array2d.New[bool](width, width)
	for y := margin; y < width-margin; y++ {
		for x := margin; x < width-margin; x++ {
			m.Set(x, y, true)
		}
	}

	return m
}
