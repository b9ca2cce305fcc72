// Package sample owns the orchestration layer of the resampling
// pipeline.
//
// Responsibilities: sampling a volume at placed coordinate batches,
// extracting plane stacks along 3D paths, oriented subvolumes at
// arbitrary poses, and volumetric shells around surfaces.
// Key types: Path, Surface, Polyline, PointGridSurface.
//
// Dependency rule: sample may depend on voxel, grid and interp, never
// the reverse. Positions and orientations come from path/surface
// collaborators; this package never fits curves or surfaces itself.
package sample
