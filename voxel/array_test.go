package voxel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArray_Idx(t *testing.T) {
	a, err := NewArray(4, 3, 2)
	require.NoError(t, err)

	tests := []struct {
		idx      []int
		expected int
	}{
		{[]int{0, 0, 0}, 0},
		{[]int{0, 0, 1}, 1},
		{[]int{0, 1, 0}, 2},
		{[]int{1, 0, 0}, 6},
		{[]int{3, 2, 1}, 23},
	}

	for _, tt := range tests {
		idx := a.Idx(tt.idx...)
		if idx != tt.expected {
			t.Errorf("Idx(%v) = %d, want %d", tt.idx, idx, tt.expected)
		}
	}
}

func TestArray_AtSet(t *testing.T) {
	a, err := NewArray(2, 5)
	require.NoError(t, err)
	require.Equal(t, 10, a.Len())

	a.Set(3.5, 1, 4)
	require.Equal(t, 3.5, a.At(1, 4))
	require.Equal(t, 3.5, a.Data[9])
}

func TestNewArray_Invalid(t *testing.T) {
	t.Parallel()

	_, err := NewArray()
	require.Error(t, err, "rank zero must be rejected")

	_, err = NewArray(3, 0, 2)
	require.Error(t, err, "zero extent must be rejected")
}

func TestNewArray_CopiesShape(t *testing.T) {
	shape := []int{2, 2}
	a, err := NewArray(shape...)
	require.NoError(t, err)

	shape[0] = 99
	require.Equal(t, []int{2, 2}, a.Shape, "array must not alias the caller's shape slice")
}
