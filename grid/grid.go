package grid

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Grid is a sampling lattice centered on the origin. Points are stored
// row-major over Shape with the last axis fastest; Shape keeps the
// logical extents (one to three axes).
type Grid struct {
	Shape  []int
	Points []r3.Vec
}

// Len returns the number of lattice points.
func (g *Grid) Len() int { return len(g.Points) }

// axisCoords returns the n centered coordinates of one axis with step
// s: coordinate i is (i - (n-1)/2)*s, so the ends sit symmetrically at
// ±(n-1)*s/2 and a length-1 axis yields exactly 0.
func axisCoords(n int, s float64) []float64 {
	c := make([]float64, n)
	half := 0.5 * float64(n-1)
	for i := range c {
		c[i] = (float64(i) - half) * s
	}
	return c
}

// Generate3D builds an origin-centered lattice of shape points spaced
// by spacing along volume axes X, Y, Z. With squeeze, length-1 axes are
// dropped from the logical Shape; point order is unaffected.
func Generate3D(shape [3]int, spacing [3]float64, squeeze bool) (*Grid, error) {
	for ax := 0; ax < 3; ax++ {
		if shape[ax] < 1 {
			return nil, fmt.Errorf("grid shape must be positive on axis %d, got %d", ax, shape[ax])
		}
		if !(spacing[ax] > 0) {
			return nil, fmt.Errorf("grid spacing must be positive on axis %d, got %v", ax, spacing[ax])
		}
	}

	xs := axisCoords(shape[0], spacing[0])
	ys := axisCoords(shape[1], spacing[1])
	zs := axisCoords(shape[2], spacing[2])

	pts := make([]r3.Vec, 0, shape[0]*shape[1]*shape[2])
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				pts = append(pts, r3.Vec{X: x, Y: y, Z: z})
			}
		}
	}

	logical := []int{shape[0], shape[1], shape[2]}
	if squeeze {
		kept := logical[:0]
		for _, n := range logical {
			if n > 1 {
				kept = append(kept, n)
			}
		}
		if len(kept) == 0 {
			// All axes degenerate: keep a single length-1 axis so the
			// shape stays addressable.
			kept = append(kept, 1)
		}
		logical = kept
	}

	return &Grid{Shape: logical, Points: pts}, nil
}

// Generate2D builds an origin-centered m×n plane lattice spanning
// volume axes X and Y; the plane normal is +Z. The logical shape stays
// (m, n) even when an extent is 1.
func Generate2D(shape [2]int, spacing [2]float64) (*Grid, error) {
	g, err := Generate3D([3]int{shape[0], shape[1], 1}, [3]float64{spacing[0], spacing[1], 1}, false)
	if err != nil {
		return nil, err
	}
	g.Shape = g.Shape[:2]
	return g, nil
}

// Generate1D builds an origin-centered n-point line lattice along +Z.
func Generate1D(n int, spacing float64) (*Grid, error) {
	g, err := Generate3D([3]int{1, 1, n}, [3]float64{1, 1, spacing}, false)
	if err != nil {
		return nil, err
	}
	g.Shape = g.Shape[2:]
	return g, nil
}
