package voxel

import "fmt"

// Volume is a dense 3D scalar field in row-major order: axis 0 (X)
// outermost, axis 2 (Z) innermost. Coordinates are voxel units, so the
// sample (i, j, k) sits at position (i, j, k). Sampling only reads a
// Volume; no pipeline stage mutates one.
type Volume struct {
	Nx, Ny, Nz int
	Data       []float64 // len = Nx * Ny * Nz
}

// NewVolume allocates a zero-filled volume with the given extents.
func NewVolume(nx, ny, nz int) (*Volume, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("volume extents must be positive, got (%d, %d, %d)", nx, ny, nz)
	}
	return &Volume{Nx: nx, Ny: ny, Nz: nz, Data: make([]float64, nx*ny*nz)}, nil
}

// NewVolumeFrom wraps existing row-major data without copying it.
func NewVolumeFrom(nx, ny, nz int, data []float64) (*Volume, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("volume extents must be positive, got (%d, %d, %d)", nx, ny, nz)
	}
	if len(data) != nx*ny*nz {
		return nil, fmt.Errorf("volume data length %d does not match extents (%d, %d, %d)", len(data), nx, ny, nz)
	}
	return &Volume{Nx: nx, Ny: ny, Nz: nz, Data: data}, nil
}

// Helper to index Data: idx = (i*Ny + j)*Nz + k
func (v *Volume) Idx(i, j, k int) int { return (i*v.Ny+j)*v.Nz + k }

// At returns the sample at (i, j, k).
func (v *Volume) At(i, j, k int) float64 { return v.Data[v.Idx(i, j, k)] }

// Set stores s at (i, j, k).
func (v *Volume) Set(i, j, k int, s float64) { v.Data[v.Idx(i, j, k)] = s }

// Fill sets every sample to s.
func (v *Volume) Fill(s float64) {
	for i := range v.Data {
		v.Data[i] = s
	}
}

// Len returns the number of samples.
func (v *Volume) Len() int { return len(v.Data) }
