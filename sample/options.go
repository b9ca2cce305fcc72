package sample

// options carries the tunable sampler parameters; required inputs stay
// positional on each sampler.
type options struct {
	order       int
	spacing     float64
	planeShape  [2]int
	gridShape   [3]int
	gridSpacing [3]float64
	fill        float64
}

// defaultOptions returns the sampler defaults: cubic interpolation,
// unit spacing, 10×10 planes, 10×10×10 subvolume grids, zero fill.
func defaultOptions() options {
	return options{
		order:       3,
		spacing:     1,
		planeShape:  [2]int{10, 10},
		gridShape:   [3]int{10, 10, 10},
		gridSpacing: [3]float64{1, 1, 1},
	}
}

// Option adjusts sampler behaviour.
type Option func(*options)

// WithOrder sets the spline interpolation order (0-5).
func WithOrder(order int) Option {
	return func(o *options) {
		o.order = order
	}
}

// WithSpacing sets the path sampling step: both the separation between
// planes along the path and their in-plane grid step.
func WithSpacing(spacing float64) Option {
	return func(o *options) {
		o.spacing = spacing
	}
}

// WithPlaneShape sets the (m, n) extent of the planes sampled along a
// path.
func WithPlaneShape(m, n int) Option {
	return func(o *options) {
		o.planeShape = [2]int{m, n}
	}
}

// WithGridShape sets the (m, n, p) extent of sampled subvolumes.
func WithGridShape(m, n, p int) Option {
	return func(o *options) {
		o.gridShape = [3]int{m, n, p}
	}
}

// WithGridSpacing sets the per-axis step of sampled subvolumes.
func WithGridSpacing(sx, sy, sz float64) Option {
	return func(o *options) {
		o.gridSpacing = [3]float64{sx, sy, sz}
	}
}

// WithFill sets the value returned for coordinates that fall outside
// the volume.
func WithFill(fill float64) Option {
	return func(o *options) {
		o.fill = fill
	}
}
