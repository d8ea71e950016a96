package kernel

import "github.com/camnca/engine/array2d"

// Block is the unit of state the simulation grid stores and the kernel
// consumes and produces: a square array of boolean cells.
type Block = array2d.Array[bool]

// Result tags the provenance of a kernel's output block.
type Result int

const (
	// NewBlock indicates an exact successor was computed.
	NewBlock Result = iota
	// Approximate is reserved for a future hierarchical-memoization path.
	// It must be accepted by callers but is never produced by the kernels
	// in this package.
	Approximate
)

// Kernel is the transition-rule contract. Implementations must be
// object-safe (usable behind an interface value) since simgrid.Dense and
// memo.Wrapper both hold a Kernel without knowing its concrete type.
type Kernel interface {
	// Order returns k such that the kernel's blocks have side 2^k.
	Order() int

	// Exec consumes four blocks of side 2^Order() arranged in a 2x2
	// meta-grid (index 0=NW, 1=NE, 2=SW, 3=SE) and returns one block of
	// the same side representing the successor of the central region.
	// Exec may be called repeatedly and must be safe to call again with
	// a different 4-tuple; it is not required to be safe for concurrent
	// calls (see memo.Wrapper, which is also single-owner).
	Exec(blocks [4]Block) (Block, Result)
}

// BlockWidth returns the side length 2^k of blocks produced by k.
// Complexity: O(1).
func BlockWidth(k Kernel) int {
	return 1 << uint(k.Order())
}
