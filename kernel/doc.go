// Package kernel defines the cellular-automaton transition contract and the
// layered totalistic convolution kernel that realizes it.
//
// A Kernel has an order k (the block side is 2^k) and an Exec operation
// that consumes four equally-sized blocks arranged NW, NE, SW, SE and
// produces one output block representing the successor of the central
// region of the assembled 2w×2w tile. Layered is the concrete workhorse:
// it counts, per output cell, how many live cells each named mask
// ("layer") overlaps in the neighborhood, then hands those counts to a
// caller-supplied decider function. Life, LargerThanLife, and MNCA are
// canonical deciders built from Layered.
package kernel
