// Package voxel owns the dense data model of the resampling pipeline.
//
// Responsibilities: the Volume scalar field that samplers read from and
// the Array results they produce. Key types: Volume, Array.
//
// Dependency rule: voxel is a leaf package; it must not depend on grid,
// interp or sample.
package voxel
