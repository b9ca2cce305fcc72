package sample

import (
	"fmt"

	"github.com/banshee-data/volsample/grid"
	"github.com/banshee-data/volsample/interp"
	"github.com/banshee-data/volsample/voxel"
)

// AtCoords samples vol at every coordinate of a placed batch with a
// B-spline of the given order and zero fill outside the volume. The
// result shape is (*gridShape, batch): the batch axis moves to the end
// so per-pose planes stack as depth without a transpose.
func AtCoords(vol *Volume, coords *grid.CoordBatch, order int) (*Array, error) {
	ip, err := interp.NewSpline(vol, order)
	if err != nil {
		return nil, fmt.Errorf("sample at coords: %w", err)
	}
	return AtCoordsUsing(ip, coords)
}

// AtCoordsUsing samples through the provided interpolation backend.
// The batch-major coordinates are flattened axis-major for one bulk
// evaluation, then scattered into the (*gridShape, batch) result.
func AtCoordsUsing(ip interp.TriInterpolator, coords *grid.CoordBatch) (*Array, error) {
	if ip == nil {
		return nil, fmt.Errorf("sample at coords: nil interpolator")
	}
	if coords == nil || coords.Batch < 1 || len(coords.Points) == 0 {
		return nil, fmt.Errorf("sample at coords: empty coordinate batch")
	}
	n := len(coords.Points) / coords.Batch
	if n*coords.Batch != len(coords.Points) {
		return nil, fmt.Errorf("sample at coords: %d points do not divide into %d batch elements", len(coords.Points), coords.Batch)
	}
	gridLen := 1
	for _, ext := range coords.GridShape {
		gridLen *= ext
	}
	if gridLen != n {
		return nil, fmt.Errorf("sample at coords: grid shape %v does not match %d points per batch element", coords.GridShape, n)
	}

	// The backend wants one slice per axis.
	total := len(coords.Points)
	xs := make([]float64, total)
	ys := make([]float64, total)
	zs := make([]float64, total)
	for i, p := range coords.Points {
		xs[i] = p.X
		ys[i] = p.Y
		zs[i] = p.Z
	}
	values := ip.EvalAll(xs, ys, zs)

	shape := append(append([]int(nil), coords.GridShape...), coords.Batch)
	out, err := voxel.NewArray(shape...)
	if err != nil {
		return nil, fmt.Errorf("sample at coords: %w", err)
	}
	// Input is batch-major (b, *grid); output is (*grid, b).
	for b := 0; b < coords.Batch; b++ {
		src := b * n
		for g := 0; g < n; g++ {
			out.Data[g*coords.Batch+b] = values[src+g]
		}
	}
	debugf("sampled %d coordinates (%d poses, %d grid points each)", total, coords.Batch, n)
	return out, nil
}

// sampleBatch runs the interpolation stage with the sampler options
// applied.
func sampleBatch(vol *Volume, batch *grid.CoordBatch, o options) (*Array, error) {
	ip, err := interp.NewSpline(vol, o.order)
	if err != nil {
		return nil, err
	}
	ip.SetFill(o.fill)
	return AtCoordsUsing(ip, batch)
}
