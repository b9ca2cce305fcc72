package interp

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// prefilterTol truncates the causal boundary sum once pole powers drop
// below it; axes shorter than the truncation horizon use the exact
// full-period form instead.
const prefilterTol = 1e-15

// splinePoles returns the z-transform poles of the recursive B-spline
// prefilter for the given order.
func splinePoles(order int) []float64 {
	switch order {
	case 2:
		return []float64{math.Sqrt(8) - 3}
	case 3:
		return []float64{math.Sqrt(3) - 2}
	case 4:
		return []float64{
			math.Sqrt(664-math.Sqrt(438976)) + math.Sqrt(304) - 19,
			math.Sqrt(664+math.Sqrt(438976)) - math.Sqrt(304) - 19,
		}
	case 5:
		return []float64{
			math.Sqrt(135.0/2-math.Sqrt(17745.0/4)) + math.Sqrt(105.0/4) - 6.5,
			math.Sqrt(135.0/2+math.Sqrt(17745.0/4)) - math.Sqrt(105.0/4) - 6.5,
		}
	}
	return nil
}

// initialCausal computes the mirror-boundary initial value of the
// causal pass for pole z.
func initialCausal(c []float64, z float64) float64 {
	n := len(c)
	horizon := int(math.Ceil(math.Log(prefilterTol) / math.Log(math.Abs(z))))
	if horizon < n {
		zi := z
		sum := c[0]
		for i := 1; i < horizon; i++ {
			sum += zi * c[i]
			zi *= z
		}
		return sum
	}
	// Exact sum over one mirrored period.
	zi := z
	zn := math.Pow(z, float64(n-1))
	sum := c[0] + zn*c[n-1]
	zn *= zn
	for i := 1; i < n-1; i++ {
		sum += (zi + zn/zi) * c[i]
		zi *= z
	}
	return sum / (1 - math.Pow(z, float64(2*n-2)))
}

// filterLine converts one line of samples to spline coefficients in
// place: gain, then a causal and an anticausal recursion per pole, both
// with mirror-symmetric boundaries. A single-sample line is already its
// own coefficient.
func filterLine(c []float64, poles []float64) {
	n := len(c)
	if n == 1 {
		return
	}

	gain := 1.0
	for _, z := range poles {
		gain *= (1 - z) * (1 - 1/z)
	}
	floats.Scale(gain, c)

	for _, z := range poles {
		c[0] = initialCausal(c, z)
		for i := 1; i < n; i++ {
			c[i] += z * c[i-1]
		}
		c[n-1] = (z*c[n-2] + c[n-1]) * z / (z*z - 1)
		for i := n - 2; i >= 0; i-- {
			c[i] = z * (c[i+1] - c[i])
		}
	}
}

// prefilterVolume converts volume samples to B-spline coefficients in
// place, filtering each axis in turn. Length-1 axes are skipped.
func prefilterVolume(data []float64, nx, ny, nz, order int) {
	poles := splinePoles(order)
	line := make([]float64, max(nx, ny, nz))

	// Axis 2 (Z): contiguous lines.
	if nz > 1 {
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				off := (i*ny + j) * nz
				filterLine(data[off:off+nz], poles)
			}
		}
	}

	// Axis 1 (Y): lines at stride nz.
	if ny > 1 {
		buf := line[:ny]
		for i := 0; i < nx; i++ {
			for k := 0; k < nz; k++ {
				off := i*ny*nz + k
				for j := 0; j < ny; j++ {
					buf[j] = data[off+j*nz]
				}
				filterLine(buf, poles)
				for j := 0; j < ny; j++ {
					data[off+j*nz] = buf[j]
				}
			}
		}
	}

	// Axis 0 (X): lines at stride ny*nz.
	if nx > 1 {
		buf := line[:nx]
		stride := ny * nz
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				off := j*nz + k
				for i := 0; i < nx; i++ {
					buf[i] = data[off+i*stride]
				}
				filterLine(buf, poles)
				for i := 0; i < nx; i++ {
					data[off+i*stride] = buf[i]
				}
			}
		}
	}
}
