package sample

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestAlongPath_StraightLineRamp(t *testing.T) {
	vol := makeAxisRampVolume(t, 24, 2) // f = z

	path, err := NewPolyline([]r3.Vec{
		{X: 5.5, Y: 5.5, Z: 3},
		{X: 5.5, Y: 5.5, Z: 13},
	})
	require.NoError(t, err)

	out, err := AlongPath(vol, path, WithPlaneShape(2, 2), WithSpacing(5), WithOrder(1))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 3}, out.Shape, "2 points 10 apart at spacing 5 give 3 planes")

	// The path runs along +Z, so every plane is an XY slice of the
	// ramp: constant, equal to the plane's z position.
	wantZ := []float64{3, 8, 13}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for b, z := range wantZ {
				assert.InDelta(t, z, out.At(i, j, b), 1e-12, "plane %d at (%d, %d)", b, i, j)
			}
		}
	}
}

func TestAlongPath_TangentOrientsPlanes(t *testing.T) {
	vol := makeAxisRampVolume(t, 24, 0) // f = x

	path, err := NewPolyline([]r3.Vec{
		{X: 3, Y: 8.5, Z: 8.5},
		{X: 13, Y: 8.5, Z: 8.5},
	})
	require.NoError(t, err)

	out, err := AlongPath(vol, path, WithPlaneShape(2, 2), WithSpacing(5), WithOrder(1))
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 3}, out.Shape)

	// Planes are normal to the +X tangent, so each one is constant at
	// the plane's x position.
	wantX := []float64{3, 8, 13}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for b, x := range wantX {
				assert.InDelta(t, x, out.At(i, j, b), 1e-12, "plane %d at (%d, %d)", b, i, j)
			}
		}
	}
}

func TestAlongPath_DefaultOptions(t *testing.T) {
	vol := makeConstVolume(t, 32, 7)

	path, err := NewPolyline([]r3.Vec{
		{X: 15.5, Y: 15.5, Z: 14},
		{X: 15.5, Y: 15.5, Z: 17},
	})
	require.NoError(t, err)

	out, err := AlongPath(vol, path)
	require.NoError(t, err)
	require.Equal(t, []int{10, 10, 4}, out.Shape, "defaults: 10x10 planes at unit spacing")
	for i, got := range out.Data {
		assert.InDelta(t, 7.0, got, 1e-9, "element %d", i)
	}
}

func TestAlongPoints_EquivalentToPolylinePath(t *testing.T) {
	vol := makeAxisRampVolume(t, 24, 1) // f = y

	points := []r3.Vec{
		{X: 8, Y: 6, Z: 8},
		{X: 8, Y: 12, Z: 8},
		{X: 14, Y: 12, Z: 8},
	}
	opts := []Option{WithPlaneShape(2, 2), WithSpacing(4), WithOrder(1)}

	viaPoints, err := AlongPoints(vol, points, opts...)
	require.NoError(t, err)

	path, err := NewPolyline(points)
	require.NoError(t, err)
	viaPath, err := AlongPath(vol, path, opts...)
	require.NoError(t, err)

	if diff := cmp.Diff(viaPath, viaPoints); diff != "" {
		t.Errorf("AlongPoints differs from AlongPath over the same polyline (-want +got):\n%s", diff)
	}
}

func TestAlongPath_Validation(t *testing.T) {
	vol := makeConstVolume(t, 8, 1)

	_, err := AlongPath(vol, nil)
	require.Error(t, err, "nil path")

	path, err := NewPolyline([]r3.Vec{{}, {X: 4}})
	require.NoError(t, err)

	_, err = AlongPath(vol, path, WithSpacing(0))
	require.Error(t, err, "zero spacing")

	_, err = AlongPath(vol, path, WithSpacing(-1))
	require.Error(t, err, "negative spacing")

	_, err = AlongPath(vol, path, WithOrder(7))
	require.Error(t, err, "invalid order")
}

func TestAlongPoints_DegenerateInput(t *testing.T) {
	vol := makeConstVolume(t, 8, 1)

	_, err := AlongPoints(vol, []r3.Vec{{X: 1, Y: 1, Z: 1}})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDegeneratePath))

	_, err = AlongPoints(vol, nil)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrDegeneratePath))
}
