package interp

// TriInterpolator evaluates a scalar field over 3D voxel coordinates.
// Implementations take coordinates axis-major: one slice per axis, one
// entry per point.
type TriInterpolator interface {
	Eval(x, y, z float64) float64
	EvalAll(xs, ys, zs []float64, out ...[]float64) []float64
}

var _ TriInterpolator = (*Spline)(nil)
