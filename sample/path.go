package sample

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/volsample/grid"
)

// ErrDegeneratePath reports a path too short to yield any sample
// positions.
var ErrDegeneratePath = errors.New("path is degenerate")

// Path supplies equidistant samples along a 3D curve: positions spaced
// spacing apart starting at the curve's start (the far end is included
// when the length divides evenly), and one orientation frame per
// position mapping +Z onto the local tangent.
type Path interface {
	Samples(spacing float64) (positions []r3.Vec, frames []r3.Rotation, err error)
}

// AlongPath extracts a stack of planes from vol following path: one
// 2D grid per equidistant path sample, lying in-plane with the local
// tangent as normal. WithSpacing sets both the separation between
// planes and their in-plane grid step; WithPlaneShape sets the plane
// extents. Output shape is (m, n, batch) for plane shape (m, n).
func AlongPath(vol *Volume, path Path, opts ...Option) (*Array, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if path == nil {
		return nil, fmt.Errorf("along path: nil path")
	}
	if !(o.spacing > 0) {
		return nil, fmt.Errorf("along path: spacing must be positive, got %v", o.spacing)
	}

	positions, frames, err := path.Samples(o.spacing)
	if err != nil {
		return nil, fmt.Errorf("along path: %w", err)
	}
	debugf("path sampling: %d planes of %dx%d at spacing %v", len(positions), o.planeShape[0], o.planeShape[1], o.spacing)

	g, err := grid.Generate2D(o.planeShape, [2]float64{o.spacing, o.spacing})
	if err != nil {
		return nil, fmt.Errorf("along path: %w", err)
	}
	batch, err := grid.Place(g, positions, frames)
	if err != nil {
		return nil, fmt.Errorf("along path: %w", err)
	}
	out, err := sampleBatch(vol, batch, o)
	if err != nil {
		return nil, fmt.Errorf("along path: %w", err)
	}
	return out, nil
}

// AlongPoints normalizes raw control points into a Polyline and samples
// along it, so callers without a path object go through the same
// pipeline.
func AlongPoints(vol *Volume, points []r3.Vec, opts ...Option) (*Array, error) {
	p, err := NewPolyline(points)
	if err != nil {
		return nil, fmt.Errorf("along points: %w", err)
	}
	return AlongPath(vol, p, opts...)
}
