// Package lattice models the topology of a SOM weight lattice as a
// pluggable distance between two units, used by the neighborhood kernel.
//
// Kinds:
//
//	Linear        — units form a chain; distance is |i − j|.
//	Grid2D        — units form a rectangular grid; distance is the
//	                Euclidean distance between grid addresses. Addresses
//	                come from Weight.GridX/GridY when present, otherwise
//	                from row-major layout over side = ceil(sqrt(n)).
//	Unstructured  — no topology; distance is the coordinate-space distance
//	                between the two units' current weight positions.
//
// One convention per lattice kind is applied uniformly for the whole run.
package lattice
