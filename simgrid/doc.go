// Package simgrid implements the block-tiled simulation grid: a pair of
// front/back block arrays advanced one generation at a time via a
// caller-supplied kernel.Kernel, using the half-shift/full-shift
// alternation scheme that lets a kernel of order k compute exact
// successors from four 2^k-side blocks while only ever touching a fixed,
// constant-zero boundary.
package simgrid
