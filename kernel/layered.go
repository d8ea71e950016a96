package kernel

import (
	"fmt"
	"math"

	"github.com/camnca/engine/array2d"
)

// Decider maps a cell's current state and its per-layer neighbor counts to
// its next state. It must be a pure function: same inputs, same output,
// every time (the memoizing wrapper in package memo assumes this).
type Decider func(center bool, counts []uint16) bool

// Layered is a totalistic kernel: each layer is a boolean mask over the
// neighborhood, and Decider turns the per-layer population counts (plus the
// current cell state) into the next state.
type Layered struct {
	decider Decider
	layers  []array2d.Array[bool]
	order   int
	width   int // mask width, shared by every layer
}

// NewLayered validates and builds a Layered kernel from a decider and a
// non-empty set of equally-sized masks. It panics on an empty layer list,
// mismatched layer dimensions, or a mask width that is not of the form
// 2*2^k+1 — these are construction-time programmer errors, not recoverable
// conditions (spec: layered-kernel construction errors are fatal).
func NewLayered(decider Decider, layers []array2d.Array[bool]) *Layered {
	if len(layers) == 0 {
		panic("kernel: Layered requires at least one mask layer")
	}

	width := layers[0].Width()
	height := layers[0].Height()
	if width != height {
		panic(fmt.Sprintf("kernel: mask must be square, got %dx%d", width, height))
	}
	for i, l := range layers {
		if l.Width() != width || l.Height() != height {
			panic(fmt.Sprintf("kernel: layer %d has dimensions %dx%d, want %dx%d", i, l.Width(), l.Height(), width, width))
		}
	}

	return &Layered{
		decider: decider,
		layers:  layers,
		order:   CalculateOrderFromWidth(width),
		width:   width,
	}
}

// Order returns the block order derived from the mask width.
func (l *Layered) Order() int { return l.order }

// Exec implements the Kernel contract: assemble the four input blocks into
// a 2w×2w buffer, then for each output cell in the central w×w region sum
// each layer's overlap with the neighborhood and hand the counts to the
// decider.
func (l *Layered) Exec(blocks [4]Block) (Block, Result) {
	w := BlockWidth(l)
	for i, b := range blocks {
		if b.Width() != w || b.Height() != w {
			panic(fmt.Sprintf("kernel: input block %d is %dx%d, kernel order requires %dx%d", i, b.Width(), b.Height(), w, w))
		}
	}

	buf := array2d.New[bool](2*w, 2*w)
	// Positions of blocks[0..3] within the assembled buffer: NW, NE, SW, SE.
	origins := [4][2]int{{0, 0}, {w, 0}, {0, w}, {w, w}}
	for bi, origin := range origins {
		block := blocks[bi]
		ox, oy := origin[0], origin[1]
		for y := 0; y < w; y++ {
			for x := 0; x < w; x++ {
				buf.Set(ox+x, oy+y, block.At(x, y))
			}
		}
	}

	out := array2d.New[bool](w, w)
	counts := make([]uint16, len(l.layers))
	centerOff := l.width / 2
	for j := 0; j < w; j++ {
		for i := 0; i < w; i++ {
			for li := range counts {
				counts[li] = 0
			}
			for li, layer := range l.layers {
				var c uint16
				for y := 0; y < l.width; y++ {
					for x := 0; x < l.width; x++ {
						if layer.At(x, y) && buf.At(i+x, j+y) {
							c++
						}
					}
				}
				counts[li] = c
			}
			center := buf.At(i+centerOff, j+centerOff)
			out.Set(i, j, l.decider(center, counts))
		}
	}

	return out, NewBlock
}

// CalculateOrderFromWidth derives a kernel's order from its mask width M,
// where M must equal 2*2^k+1 for some k >= 0 (valid widths: 3, 5, 9, 17,
// 33, ...). It panics if width is not of this form.
func CalculateOrderFromWidth(width int) int {
	for k := 0; k < 64; k++ {
		radius := 1 << uint(k)
		if radius > (math.MaxInt-1)/2 {
			break // any larger k would overflow before reaching width
		}
		expected := 2*radius + 1
		if width == expected {
			return k + 1
		}
		if expected > width {
			break
		}
	}

	panic(fmt.Sprintf("kernel: invalid mask width %d, must be 2*2^k+1 for some k >= 0", width))
}
