// Package liveregions analyzes the currently alive cells of a simgrid.Dense
// as connected regions ("islands"): flood-filling them into components, and
// finding the minimal number of dead cells that must be flipped alive to
// bridge two regions.
package liveregions
