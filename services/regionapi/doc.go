// Package regionapi provides typed wrappers over the public region lookup
// endpoints. Regions are reference data; both operations are unauthenticated.
package regionapi
