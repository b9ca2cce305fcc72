package sample

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Polyline is the default Path: a piecewise-linear curve through
// control points, parameterized by arc length.
type Polyline struct {
	points     []r3.Vec
	arc        []float64 // cumulative arc length at each control point
	px, py, pz interp.PiecewiseLinear
	length     float64
}

var _ Path = (*Polyline)(nil)

// NewPolyline builds a polyline through the given control points.
// Consecutive duplicate points are dropped; fewer than two distinct
// points leave no curve to sample.
func NewPolyline(points []r3.Vec) (*Polyline, error) {
	distinct := make([]r3.Vec, 0, len(points))
	for _, p := range points {
		if len(distinct) > 0 && p == distinct[len(distinct)-1] {
			continue
		}
		distinct = append(distinct, p)
	}
	if len(distinct) < 2 {
		return nil, fmt.Errorf("polyline: %w: need at least 2 distinct points, got %d", ErrDegeneratePath, len(distinct))
	}

	n := len(distinct)
	arc := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i, p := range distinct {
		if i > 0 {
			arc[i] = arc[i-1] + r3.Norm(r3.Sub(p, distinct[i-1]))
		}
		xs[i] = p.X
		ys[i] = p.Y
		zs[i] = p.Z
	}

	pl := &Polyline{points: distinct, arc: arc, length: arc[n-1]}
	if err := pl.px.Fit(arc, xs); err != nil {
		return nil, fmt.Errorf("polyline: fit x: %w", err)
	}
	if err := pl.py.Fit(arc, ys); err != nil {
		return nil, fmt.Errorf("polyline: fit y: %w", err)
	}
	if err := pl.pz.Fit(arc, zs); err != nil {
		return nil, fmt.Errorf("polyline: fit z: %w", err)
	}
	return pl, nil
}

// Length returns the total arc length.
func (p *Polyline) Length() float64 { return p.length }

// at returns the position at arc length t.
func (p *Polyline) at(t float64) r3.Vec {
	return r3.Vec{X: p.px.Predict(t), Y: p.py.Predict(t), Z: p.pz.Predict(t)}
}

// tangentAt returns the unit tangent of the segment containing arc
// length t; interior control points take the incoming segment, the far
// end the final segment.
func (p *Polyline) tangentAt(t float64) r3.Vec {
	i := sort.SearchFloat64s(p.arc, t)
	if i < 1 {
		i = 1
	}
	if i > len(p.points)-1 {
		i = len(p.points) - 1
	}
	return r3.Unit(r3.Sub(p.points[i], p.points[i-1]))
}

// Samples returns floor(Length/spacing)+1 equidistant positions along
// the polyline starting at its first point, with frames carrying +Z
// onto the local tangent. Frames follow the curve by parallel
// transport, so they never spin about the tangent between steps.
func (p *Polyline) Samples(spacing float64) ([]r3.Vec, []r3.Rotation, error) {
	if !(spacing > 0) {
		return nil, nil, fmt.Errorf("polyline: spacing must be positive, got %v", spacing)
	}

	n := int(math.Floor(p.length/spacing)) + 1
	positions := make([]r3.Vec, n)
	frames := make([]r3.Rotation, n)

	tPrev := p.tangentAt(0)
	q := quat.Number(minimalRotation(r3.Vec{Z: 1}, tPrev))
	positions[0] = p.at(0)
	frames[0] = r3.Rotation(q)
	for i := 1; i < n; i++ {
		t := float64(i) * spacing
		positions[i] = p.at(t)
		tan := p.tangentAt(t)
		step := quat.Number(minimalRotation(tPrev, tan))
		q = quat.Mul(step, q)
		q = quat.Scale(1/quat.Abs(q), q)
		frames[i] = r3.Rotation(q)
		tPrev = tan
	}
	return positions, frames, nil
}

// minimalRotation returns the smallest rotation carrying unit vector
// from onto unit vector to.
func minimalRotation(from, to r3.Vec) r3.Rotation {
	d := r3.Dot(from, to)
	switch {
	case d > 1-1e-12:
		return r3.NewRotation(0, r3.Vec{X: 1})
	case d < -1+1e-12:
		// Opposite directions: half turn about any axis orthogonal to
		// from.
		axis := r3.Cross(from, r3.Vec{X: 1})
		if r3.Norm(axis) < 1e-9 {
			axis = r3.Cross(from, r3.Vec{Y: 1})
		}
		return r3.NewRotation(math.Pi, axis)
	default:
		return r3.NewRotation(math.Acos(d), r3.Cross(from, to))
	}
}
