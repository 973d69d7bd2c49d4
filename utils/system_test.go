package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestIsNan(t *testing.T) {
	assert.False(t, IsNan(1.))
	assert.True(t, IsNan(math.NaN()))
	assert.True(t, IsNan(math.Inf(-1)))
	assert.True(t, IsNan(float32(math.NaN())))
	assert.True(t, IsNan([]float64{1, 2, math.Inf(1)}))
	assert.False(t, IsNan([]float64{1, 2, 3}))
	assert.True(t, IsNan(r2.Vec{Y: math.NaN()}))
	assert.True(t, IsNan([]r2.Vec{{X: 1}, {X: math.NaN()}}))
	assert.False(t, IsNan("not a number type"))
	assert.Contains(t, GetMemUsage(), "MiB")
}
