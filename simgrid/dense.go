package simgrid

import (
	"github.com/camnca/engine/array2d"
	"github.com/camnca/engine/kernel"
)

// Dense is the block-tiled simulation grid. It owns a front and back array
// of blocks one larger than the logical width/height in each dimension, to
// accommodate the half-shift phase, and exclusively owns the kernel that
// advances it.
type Dense struct {
	front, back array2d.Array[kernel.Block]
	k           kernel.Kernel
	zeroBorders bool
	blockSide   int
}

// New allocates a (width+1)x(height+1) array of zero-filled blocks in both
// front and back buffers, sized to the kernel's order, and starts in the
// zero-borders phase.
// Complexity: O(width*height*blockSide^2).
func New(k kernel.Kernel, width, height int) *Dense {
	if width <= 0 || height <= 0 {
		panic("simgrid: width and height must be positive")
	}

	blockSide := kernel.BlockWidth(k)
	front := array2d.New[kernel.Block](width+1, height+1)
	back := array2d.New[kernel.Block](width+1, height+1)
	zero := array2d.New[bool](blockSide, blockSide)
	for y := 0; y < height+1; y++ {
		for x := 0; x < width+1; x++ {
			front.Set(x, y, zero.Clone())
			back.Set(x, y, zero.Clone())
		}
	}

	return &Dense{front: front, back: back, k: k, zeroBorders: true, blockSide: blockSide}
}

// blockAtZeroBorder returns a clone of the block at (x, y), or a freshly
// zero-filled block of the grid's side if (x, y) falls outside the front
// buffer — the fixed constant-zero boundary condition.
func (d *Dense) blockAtZeroBorder(x, y int) kernel.Block {
	if x < 0 || y < 0 || x >= d.front.Width() || y >= d.front.Height() {
		return array2d.New[bool](d.blockSide, d.blockSide)
	}
	b := d.front.At(x, y)

	return b.Clone()
}

// Step advances the simulation by one generation: every destination block
// position gathers its four source blocks from the front buffer (offset by
// the current phase), delegates to the kernel, and writes the result into
// the back buffer. After the full traversal, front and back swap and the
// phase toggles.
// Complexity: O(width*height) kernel invocations.
func (d *Dense) Step() {
	w, h := d.front.Width(), d.front.Height()
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			x, y := i, j
			if d.zeroBorders {
				x, y = i-1, j-1
			}

			in := [4]kernel.Block{
				d.blockAtZeroBorder(x, y),
				d.blockAtZeroBorder(x+1, y),
				d.blockAtZeroBorder(x, y+1),
				d.blockAtZeroBorder(x+1, y+1),
			}

			out, _ := d.k.Exec(in)
			d.back.Set(i, j, out)
		}
	}

	d.front, d.back = d.back, d.front
	d.zeroBorders = !d.zeroBorders
}

// PixelDims returns the grid's observable size in cells (width, height).
// Complexity: O(1).
func (d *Dense) PixelDims() (int, int) {
	return (d.front.Width() - 1) * d.blockSide, (d.front.Height() - 1) * d.blockSide
}

// pixelToBlock maps a pixel coordinate to its (block index, intra-block
// offset), accounting for the half-block shift in the non-zero-borders
// phase.
func (d *Dense) pixelToBlock(x, y int) (bx, by, px, py int) {
	w := d.blockSide
	if !d.zeroBorders {
		x += w / 2
		y += w / 2
	}

	return x / w, y / w, x % w, y % w
}

// GetPixel reads the cell at pixel coordinate (x, y). Behavior for (x, y)
// outside [0, PixelDims()) is undefined; callers must respect PixelDims.
// Complexity: O(1).
func (d *Dense) GetPixel(x, y int) bool {
	bx, by, px, py := d.pixelToBlock(x, y)
	block := d.front.At(bx, by)

	return block.At(px, py)
}

// SetPixel writes the cell at pixel coordinate (x, y).
// Complexity: O(1).
func (d *Dense) SetPixel(x, y int, v bool) {
	bx, by, px, py := d.pixelToBlock(x, y)
	block := d.front.At(bx, by)
	block.Set(px, py, v)
}

// DataMut exposes the front buffer for bulk seeding by collaborators (test
// harnesses, random initializers, file loaders) before the first Step.
// Complexity: O(1).
func (d *Dense) DataMut() *array2d.Array[kernel.Block] {
	return &d.front
}

// Kernel returns the grid's kernel.
// Complexity: O(1).
func (d *Dense) Kernel() kernel.Kernel {
	return d.k
}
