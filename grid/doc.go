// Package grid owns the geometry stages of the resampling pipeline.
//
// Responsibilities: generating origin-centered sampling lattices (1D,
// 2D, 3D) and rigidly placing copies of a lattice at batches of poses.
// Key types: Grid, CoordBatch.
//
// Dependency rule: grid may depend on voxel, never on interp or sample.
package grid
