package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()

	assert.Equal(t, 3, o.order)
	assert.Equal(t, 1.0, o.spacing)
	assert.Equal(t, [2]int{10, 10}, o.planeShape)
	assert.Equal(t, [3]int{10, 10, 10}, o.gridShape)
	assert.Equal(t, [3]float64{1, 1, 1}, o.gridSpacing)
	assert.Zero(t, o.fill)
}

func TestOptionSetters(t *testing.T) {
	o := defaultOptions()
	for _, opt := range []Option{
		WithOrder(1),
		WithSpacing(2.5),
		WithPlaneShape(4, 6),
		WithGridShape(3, 4, 5),
		WithGridSpacing(0.5, 1, 2),
		WithFill(-7),
	} {
		opt(&o)
	}

	assert.Equal(t, 1, o.order)
	assert.Equal(t, 2.5, o.spacing)
	assert.Equal(t, [2]int{4, 6}, o.planeShape)
	assert.Equal(t, [3]int{3, 4, 5}, o.gridShape)
	assert.Equal(t, [3]float64{0.5, 1, 2}, o.gridSpacing)
	assert.Equal(t, -7.0, o.fill)
}
