package interp

import (
	"fmt"
	"math"

	"github.com/banshee-data/volsample/voxel"
)

// Spline interpolates a voxel.Volume with uniform B-splines. Order 0 is
// nearest neighbour, order 1 trilinear; orders 2-5 prefilter the volume
// once at construction so evaluation at integer coordinates reproduces
// the voxel values exactly, with order 3 giving uniform-cubic-spline
// semantics.
//
// Out-of-bounds policy: a coordinate is in bounds iff 0 <= c <= n-1 on
// every axis. In-bounds support taps that cross an edge mirror back
// into the volume (matching the prefilter boundary); coordinates out of
// bounds return the fill value, 0 unless SetFill changes it.
//
// Evaluation is read-only, so one Spline is safe for concurrent use.
type Spline struct {
	order      int
	nx, ny, nz int
	coef       []float64
	fill       float64
}

// NewSpline prefilters vol into spline coefficients of the given order
// (0-5). The volume is copied, never modified.
func NewSpline(vol *voxel.Volume, order int) (*Spline, error) {
	if vol == nil || len(vol.Data) == 0 {
		return nil, fmt.Errorf("spline: empty volume")
	}
	if len(vol.Data) != vol.Nx*vol.Ny*vol.Nz {
		return nil, fmt.Errorf("spline: volume data length %d does not match extents (%d, %d, %d)", len(vol.Data), vol.Nx, vol.Ny, vol.Nz)
	}
	if order < 0 || order > 5 {
		return nil, fmt.Errorf("spline: order must be in [0, 5], got %d", order)
	}

	coef := append([]float64(nil), vol.Data...)
	if order >= 2 {
		prefilterVolume(coef, vol.Nx, vol.Ny, vol.Nz, order)
	}
	return &Spline{order: order, nx: vol.Nx, ny: vol.Ny, nz: vol.Nz, coef: coef}, nil
}

// Order returns the spline order.
func (s *Spline) Order() int { return s.order }

// SetFill sets the value returned for out-of-bounds coordinates.
func (s *Spline) SetFill(v float64) { s.fill = v }

// Eval returns the interpolated value at (x, y, z) in voxel
// coordinates.
func (s *Spline) Eval(x, y, z float64) float64 {
	if !(x >= 0 && x <= float64(s.nx-1) &&
		y >= 0 && y <= float64(s.ny-1) &&
		z >= 0 && z <= float64(s.nz-1)) {
		return s.fill
	}
	if s.order == 0 {
		i := int(math.Floor(x + 0.5))
		j := int(math.Floor(y + 0.5))
		k := int(math.Floor(z + 0.5))
		return s.coef[(i*s.ny+j)*s.nz+k]
	}

	var wx, wy, wz [6]float64
	var ix, iy, iz [6]int
	tapWeights(x, s.order, s.nx, &wx, &ix)
	tapWeights(y, s.order, s.ny, &wy, &iy)
	tapWeights(z, s.order, s.nz, &wz, &iz)

	taps := s.order + 1
	var acc float64
	for a := 0; a < taps; a++ {
		rowX := ix[a] * s.ny
		for b := 0; b < taps; b++ {
			rowXY := (rowX + iy[b]) * s.nz
			wxy := wx[a] * wy[b]
			for c := 0; c < taps; c++ {
				acc += wxy * wz[c] * s.coef[rowXY+iz[c]]
			}
		}
	}
	return acc
}

// EvalAll evaluates at every (xs[i], ys[i], zs[i]). Results go into
// out[0] when given, otherwise into a fresh slice.
func (s *Spline) EvalAll(xs, ys, zs []float64, out ...[]float64) []float64 {
	var res []float64
	if len(out) > 0 {
		res = out[0]
	} else {
		res = make([]float64, len(xs))
	}
	for i := range xs {
		res[i] = s.Eval(xs[i], ys[i], zs[i])
	}
	return res
}

// tapWeights fills the order+1 support indices and kernel weights for
// one axis at coordinate x. Indices beyond the edges are mirrored back
// into [0, n-1].
func tapWeights(x float64, order, n int, w *[6]float64, idx *[6]int) {
	var i0 int
	if order&1 == 1 {
		i0 = int(math.Floor(x)) - (order-1)/2
	} else {
		i0 = int(math.Floor(x+0.5)) - order/2
	}
	for a := 0; a <= order; a++ {
		i := i0 + a
		w[a] = bspline(order, x-float64(i))
		idx[a] = mirror(i, n)
	}
}

// mirror reflects index i into [0, n-1] about the edge samples
// (..., 2, 1, 0, 1, 2, ... at the low edge).
func mirror(i, n int) int {
	if n == 1 {
		return 0
	}
	period := 2 * (n - 1)
	i %= period
	if i < 0 {
		i += period
	}
	if i >= n {
		i = period - i
	}
	return i
}

// bspline evaluates the centered uniform B-spline kernel of the given
// order at offset t.
func bspline(order int, t float64) float64 {
	t = math.Abs(t)
	switch order {
	case 1:
		if t < 1 {
			return 1 - t
		}
	case 2:
		switch {
		case t < 0.5:
			return 0.75 - t*t
		case t < 1.5:
			d := 1.5 - t
			return 0.5 * d * d
		}
	case 3:
		switch {
		case t < 1:
			return 2.0/3.0 + t*t*(0.5*t-1)
		case t < 2:
			d := 2 - t
			return d * d * d / 6
		}
	case 4:
		switch {
		case t < 0.5:
			t2 := t * t
			return t2*(0.25*t2-0.625) + 115.0/192.0
		case t < 1.5:
			return t*(t*(t*(5.0/6.0-t/6.0)-1.25)+5.0/24.0) + 55.0/96.0
		case t < 2.5:
			d := 2.5 - t
			d *= d
			return d * d / 24
		}
	case 5:
		switch {
		case t < 1:
			t2 := t * t
			return t2*(t2*(0.25-t/12.0)-0.5) + 0.55
		case t < 2:
			return t*(t*(t*(t*(t/24.0-0.375)+1.25)-1.75)+0.625) + 17.0/40.0
		case t < 3:
			d := 3 - t
			d2 := d * d
			return d2 * d2 * d / 120
		}
	}
	return 0
}
