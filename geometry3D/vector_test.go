package geometry3D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	var (
		a = NewVector(1, 2, 3)
		b = NewVector(-4, 0.5, 2)
	)
	assert.Equal(t, NewVector(-3, 2.5, 5), a.Add(b))
	assert.Equal(t, NewVector(5, 1.5, 1), a.Sub(b))
	assert.Equal(t, NewVector(2, 4, 6), a.Scale(2))
	assert.InDelta(t, math.Sqrt(25+2.25+1), a.Dist(b), 1.e-12)
	assert.Equal(t, 0., a.Dist(a))
	assert.Equal(t, [3]float64{1, 2, 3}, a.Components())
	// NaN propagates, no guard
	n := a.Add(NewVector(math.NaN(), 0, 0))
	assert.True(t, math.IsNaN(n.X))
	assert.Equal(t, 2., n.Y)
}

func TestParameter(t *testing.T) {
	for _, val := range []float64{0, 0.25, 0.5, 1} {
		p, err := NewParameter(val)
		require.NoError(t, err)
		assert.Equal(t, val, p.Val())
	}
	for _, val := range []float64{-0.01, 1.01, math.NaN(), math.Inf(1)} {
		_, err := NewParameter(val)
		var rangeErr *ParameterRangeError
		require.Error(t, err)
		assert.True(t, errors.As(err, &rangeErr))
	}
	// Uniform parameters hit both ends exactly
	{
		assert.Equal(t, 0., UniformParameter(0, 7).Val())
		assert.Equal(t, 1., UniformParameter(6, 7).Val())
		assert.Equal(t, 0.5, UniformParameter(3, 7).Val())
		assert.Equal(t, 1./3., UniformParameter(1, 4).Val())
	}
}

func TestBetween(t *testing.T) {
	var (
		zero, one = UniformParameter(0, 2), UniformParameter(1, 2)
		pairs     = [][2]Vector{
			{NewVector(0, 0, 0), NewVector(1, 1, 1)},
			{NewVector(0.1, -0.7, 3.3), NewVector(1e-3, 17.123456789, -2.2)},
			{NewVector(1e10, -1e-10, 0.3), NewVector(-0.3, 0.1, 1e-17)},
		}
	)
	for _, p := range pairs {
		// Exact ends, not merely close
		assert.Equal(t, p[0], Between(p[0], p[1], zero))
		assert.Equal(t, p[1], Between(p[0], p[1], one))
	}
	{ // Ends survive values that do not blend
		var (
			negZero = math.Copysign(0, -1)
			p1      = NewVector(negZero, 1, 2)
			p2      = NewVector(math.Inf(1), math.NaN(), 5)
		)
		start := Between(p1, p2, zero)
		assert.True(t, math.Signbit(start.X))
		assert.Equal(t, p1, start)
		end := Between(p2, p1, one)
		assert.True(t, math.Signbit(end.X))
		assert.Equal(t, 1., end.Y)
	}
	half, err := NewParameter(0.5)
	require.NoError(t, err)
	assert.Equal(t, NewVector(1, 2, 3), Between(NewVector(0, 0, 0), NewVector(2, 4, 6), half))
	quarter, _ := NewParameter(0.25)
	mid := Between(NewVector(-1, 0, 4), NewVector(3, 8, 0), quarter)
	assert.InDelta(t, 0., mid.X, 1.e-15)
	assert.InDelta(t, 2., mid.Y, 1.e-15)
	assert.InDelta(t, 3., mid.Z, 1.e-15)
}
