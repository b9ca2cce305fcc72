package sample

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/volsample/grid"
	"github.com/banshee-data/volsample/voxel"
)

// Surface supplies a lattice of poses tiling a 3D surface: GridShape
// gives the lattice extents (rows, cols); Positions and Orientations
// return rows*cols entries in the same row-major order, each frame
// mapping +Z onto the local surface normal.
type Surface interface {
	GridShape() (rows, cols int)
	Positions() []r3.Vec
	Orientations() []r3.Rotation
}

// AroundSurface extracts a volumetric shell of vol following surf: a 1D
// grid of thickness points, stepped spacing apart along the local
// normal, is placed at every surface pose and sampled. Output shape is
// (rows, cols, thickness).
func AroundSurface(vol *Volume, surf Surface, thickness int, spacing float64, opts ...Option) (*Array, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if surf == nil {
		return nil, fmt.Errorf("around surface: nil surface")
	}
	if thickness < 1 {
		return nil, fmt.Errorf("around surface: thickness must be at least 1, got %d", thickness)
	}
	if !(spacing > 0) {
		return nil, fmt.Errorf("around surface: spacing must be positive, got %v", spacing)
	}

	rows, cols := surf.GridShape()
	positions := surf.Positions()
	orientations := surf.Orientations()
	if rows < 1 || cols < 1 || len(positions) == 0 {
		return nil, fmt.Errorf("around surface: degenerate surface (%dx%d lattice, %d positions)", rows, cols, len(positions))
	}
	if len(positions) != rows*cols {
		return nil, fmt.Errorf("around surface: surface returned %d positions for a %dx%d lattice", len(positions), rows, cols)
	}
	if len(positions) != len(orientations) {
		return nil, fmt.Errorf("around surface: %w: %d positions, %d orientations", grid.ErrPoseMismatch, len(positions), len(orientations))
	}

	g, err := grid.Generate1D(thickness, spacing)
	if err != nil {
		return nil, fmt.Errorf("around surface: %w", err)
	}
	batch, err := grid.Place(g, positions, orientations)
	if err != nil {
		return nil, fmt.Errorf("around surface: %w", err)
	}
	debugf("surface sampling: %dx%d poses, thickness %d", rows, cols, thickness)

	flat, err := sampleBatch(vol, batch, o) // shape (thickness, rows*cols)
	if err != nil {
		return nil, fmt.Errorf("around surface: %w", err)
	}

	// Regroup (thickness, rows*cols) into (rows, cols, thickness).
	out, err := voxel.NewArray(rows, cols, thickness)
	if err != nil {
		return nil, fmt.Errorf("around surface: %w", err)
	}
	nPoses := rows * cols
	for d := 0; d < thickness; d++ {
		for p := 0; p < nPoses; p++ {
			out.Data[p*thickness+d] = flat.Data[d*nPoses+p]
		}
	}
	return out, nil
}

// PointGridSurface is the default Surface: a caller-supplied lattice of
// points on the surface, row-major. Normals come from the cross
// product of finite-difference tangents along the two lattice axes;
// frames rotate +Z onto the normal by the minimal rotation.
type PointGridSurface struct {
	rows, cols   int
	positions    []r3.Vec
	orientations []r3.Rotation
}

var _ Surface = (*PointGridSurface)(nil)

// NewPointGridSurface builds a surface from points laid out row-major
// on a rows×cols lattice. Both extents must be at least 2 so tangents
// exist everywhere.
func NewPointGridSurface(points []r3.Vec, rows, cols int) (*PointGridSurface, error) {
	if rows < 2 || cols < 2 {
		return nil, fmt.Errorf("point grid surface: need at least a 2x2 lattice, got %dx%d", rows, cols)
	}
	if len(points) != rows*cols {
		return nil, fmt.Errorf("point grid surface: %d points do not fill a %dx%d lattice", len(points), rows, cols)
	}

	s := &PointGridSurface{
		rows:      rows,
		cols:      cols,
		positions: append([]r3.Vec(nil), points...),
	}
	s.orientations = make([]r3.Rotation, len(points))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			normal := r3.Cross(s.rowTangent(i, j), s.colTangent(i, j))
			if r3.Norm(normal) == 0 {
				return nil, fmt.Errorf("point grid surface: degenerate lattice cell at (%d, %d)", i, j)
			}
			s.orientations[i*cols+j] = minimalRotation(r3.Vec{Z: 1}, r3.Unit(normal))
		}
	}
	return s, nil
}

// rowTangent is the finite difference along the first lattice axis at
// (i, j): central where possible, one-sided at the borders.
func (s *PointGridSurface) rowTangent(i, j int) r3.Vec {
	lo, hi := i-1, i+1
	if lo < 0 {
		lo = 0
	}
	if hi > s.rows-1 {
		hi = s.rows - 1
	}
	return r3.Sub(s.at(hi, j), s.at(lo, j))
}

// colTangent is the finite difference along the second lattice axis.
func (s *PointGridSurface) colTangent(i, j int) r3.Vec {
	lo, hi := j-1, j+1
	if lo < 0 {
		lo = 0
	}
	if hi > s.cols-1 {
		hi = s.cols - 1
	}
	return r3.Sub(s.at(i, hi), s.at(i, lo))
}

func (s *PointGridSurface) at(i, j int) r3.Vec { return s.positions[i*s.cols+j] }

// GridShape returns the lattice extents.
func (s *PointGridSurface) GridShape() (rows, cols int) { return s.rows, s.cols }

// Positions returns the lattice points row-major.
func (s *PointGridSurface) Positions() []r3.Vec {
	return append([]r3.Vec(nil), s.positions...)
}

// Orientations returns the per-point normal frames row-major.
func (s *PointGridSurface) Orientations() []r3.Rotation {
	return append([]r3.Rotation(nil), s.orientations...)
}
