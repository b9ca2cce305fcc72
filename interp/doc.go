// Package interp owns the volume interpolation backend of the
// resampling pipeline.
//
// Responsibilities: evaluating a voxel.Volume at arbitrary fractional
// coordinates with uniform B-splines of order 0-5, including the
// recursive prefilter that turns samples into spline coefficients.
// Key types: TriInterpolator, Spline.
//
// Dependency rule: interp may depend on voxel, never on grid or sample.
package interp
