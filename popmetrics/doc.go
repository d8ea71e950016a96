// Package popmetrics records per-generation population statistics for a
// running simulation and computes column covariance/correlation over the
// recorded run: live-cell count, density, and delta versus the previous
// generation.
package popmetrics
