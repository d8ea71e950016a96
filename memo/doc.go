// Package memo implements a memoizing wrapper around a kernel.Kernel. It
// assigns integer identities to blocks by content, and caches the mapping
// from a 4-tuple of input identities to an output identity in a
// capacity-bounded LRU, periodically garbage-collecting the identity tables
// down to the set still reachable from the LRU.
package memo
