package sample

import (
	"github.com/banshee-data/volsample/voxel"
)

// Type aliases re-export the data model so sampler callers can work
// with one import.

// Volume is the dense 3D scalar field samplers read from.
type Volume = voxel.Volume

// Array is the dense row-major result array samplers return.
type Array = voxel.Array

// Constructor re-exports.

// NewVolume allocates a zero-filled volume with the given extents.
var NewVolume = voxel.NewVolume

// NewVolumeFrom wraps existing row-major data without copying it.
var NewVolumeFrom = voxel.NewVolumeFrom
