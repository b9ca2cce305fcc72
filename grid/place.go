package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// ErrPoseMismatch reports position and orientation batches of different
// lengths.
var ErrPoseMismatch = errors.New("positions and orientations differ in length")

// unitNormTol bounds ||q|-1| for orientations. Unit quaternions encode
// proper rotations only, so scaling and reflection are excluded.
const unitNormTol = 1e-9

// CoordBatch holds one transformed copy of a grid per pose, batch-major:
// pose b's points occupy Points[b*N : (b+1)*N] in the grid's row-major
// point order.
type CoordBatch struct {
	Batch     int
	GridShape []int
	Points    []r3.Vec
}

// Len returns the total number of coordinates across the batch.
func (c *CoordBatch) Len() int { return len(c.Points) }

// GridLen returns the number of points in one grid copy.
func (c *CoordBatch) GridLen() int {
	if c.Batch == 0 {
		return 0
	}
	return len(c.Points) / c.Batch
}

// rotationMatrix expands a unit quaternion into its 3×3 matrix; column
// j is the rotated basis vector e_j.
func rotationMatrix(rot r3.Rotation) *mat.Dense {
	ex := rot.Rotate(r3.Vec{X: 1})
	ey := rot.Rotate(r3.Vec{Y: 1})
	ez := rot.Rotate(r3.Vec{Z: 1})
	return mat.NewDense(3, 3, []float64{
		ex.X, ey.X, ez.X,
		ex.Y, ey.Y, ez.Y,
		ex.Z, ey.Z, ez.Z,
	})
}

// Place rigidly transforms the grid by every pose in the batch: all
// points are rotated by orientations[b], then shifted by positions[b].
// Batch element b of the result corresponds to pose b exactly; within a
// batch element, point order matches the grid's row-major order. The
// input grid is never modified.
func Place(g *Grid, positions []r3.Vec, orientations []r3.Rotation) (*CoordBatch, error) {
	if g == nil || len(g.Points) == 0 {
		return nil, fmt.Errorf("place: empty grid")
	}
	if len(positions) != len(orientations) {
		return nil, fmt.Errorf("place: %w: %d positions, %d orientations", ErrPoseMismatch, len(positions), len(orientations))
	}
	if len(positions) == 0 {
		return nil, fmt.Errorf("place: empty pose batch")
	}
	for b, o := range orientations {
		if norm := quat.Abs(quat.Number(o)); math.Abs(norm-1) > unitNormTol {
			return nil, fmt.Errorf("place: orientation %d is not a unit quaternion (|q| = %v)", b, norm)
		}
	}

	n := len(g.Points)
	src := mat.NewDense(n, 3, nil)
	for i, p := range g.Points {
		src.Set(i, 0, p.X)
		src.Set(i, 1, p.Y)
		src.Set(i, 2, p.Z)
	}

	out := &CoordBatch{
		Batch:     len(positions),
		GridShape: append([]int(nil), g.Shape...),
		Points:    make([]r3.Vec, n*len(positions)),
	}

	var rotated mat.Dense
	for b := range positions {
		// Rotating every row vector at once: (N×3)·Rᵀ.
		rotated.Mul(src, rotationMatrix(orientations[b]).T())
		t := positions[b]
		base := b * n
		for i := 0; i < n; i++ {
			out.Points[base+i] = r3.Vec{
				X: rotated.At(i, 0) + t.X,
				Y: rotated.At(i, 1) + t.Y,
				Z: rotated.At(i, 2) + t.Z,
			}
		}
	}
	return out, nil
}
