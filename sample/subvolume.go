package sample

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/banshee-data/volsample/grid"
)

// Subvolumes extracts one oriented cutout of vol per pose: an
// un-squeezed 3D grid (WithGridShape, WithGridSpacing) is placed at
// each position and orientation exactly as given, with no equidistant
// resampling of the poses. Output shape is (m, n, p, batch).
func Subvolumes(vol *Volume, positions []r3.Vec, orientations []r3.Rotation, opts ...Option) (*Array, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g, err := grid.Generate3D(o.gridShape, o.gridSpacing, false)
	if err != nil {
		return nil, fmt.Errorf("subvolumes: %w", err)
	}
	batch, err := grid.Place(g, positions, orientations)
	if err != nil {
		return nil, fmt.Errorf("subvolumes: %w", err)
	}
	debugf("subvolume sampling: %d poses, grid %v", batch.Batch, batch.GridShape)

	out, err := sampleBatch(vol, batch, o)
	if err != nil {
		return nil, fmt.Errorf("subvolumes: %w", err)
	}
	return out, nil
}
