package voxel

import "fmt"

// Array is a dense n-dimensional float64 array in row-major order (last
// axis fastest). Sampler results are Arrays whose shape follows from
// the sampling geometry, e.g. (m, n, batch) for a stack of planes.
type Array struct {
	Shape []int
	Data  []float64
}

// NewArray allocates a zero-filled array with the given shape.
func NewArray(shape ...int) (*Array, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("array needs at least one axis")
	}
	n := 1
	for ax, ext := range shape {
		if ext < 1 {
			return nil, fmt.Errorf("array extent must be positive on axis %d, got %d", ax, ext)
		}
		n *= ext
	}
	return &Array{Shape: append([]int(nil), shape...), Data: make([]float64, n)}, nil
}

// Helper to index Data; idx must supply one index per axis.
func (a *Array) Idx(idx ...int) int {
	flat := 0
	for ax, i := range idx {
		flat = flat*a.Shape[ax] + i
	}
	return flat
}

// At returns the element at the given n-dimensional index.
func (a *Array) At(idx ...int) float64 { return a.Data[a.Idx(idx...)] }

// Set stores s at the given n-dimensional index.
func (a *Array) Set(s float64, idx ...int) { a.Data[a.Idx(idx...)] = s }

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.Data) }
