// Package circuitapi provides typed wrappers over the circuit endpoints:
// public browsing of competitive circuits with their seasons and stages, and
// the authenticated user's own circuits.
package circuitapi
