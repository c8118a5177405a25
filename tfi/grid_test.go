package tfi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/tfimesh/geometry3D"
)

func TestGrid2D(t *testing.T) {
	g := NewGrid2D(3, 2)
	for iA := 0; iA < 3; iA++ {
		for iB := 0; iB < 2; iB++ {
			g.Set(iA, iB, vec(float64(iA), float64(iB), 0))
		}
	}
	assert.Equal(t, vec(2, 1, 0), g.Points[5])
	assert.Equal(t, []geometry3D.Vector{vec(0, 0, 0), vec(1, 0, 0), vec(2, 0, 0)}, g.Column(0))
	assert.Equal(t, []geometry3D.Vector{vec(0, 1, 0), vec(1, 1, 0), vec(2, 1, 0)}, g.Column(1))
}

func TestGrid3DLayers(t *testing.T) {
	g := NewGrid3D(2, 3, 4)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 4; k++ {
				g.Set(i, j, k, vec(float64(i), float64(j), float64(k)))
			}
		}
	}
	counts := map[geometry3D.Side][2]int{
		geometry3D.Xi0: {3, 4}, geometry3D.Xi1: {3, 4},
		geometry3D.Eta0: {2, 4}, geometry3D.Eta1: {2, 4},
		geometry3D.Zeta0: {2, 3}, geometry3D.Zeta1: {2, 3},
	}
	for s, want := range counts {
		layer := g.Layer(s)
		assert.Equal(t, want, [2]int{layer.NA, layer.NB}, s.String())
		d, val := s.Normal()
		fixed := float64(val * ([3]int{2, 3, 4}[d] - 1))
		for _, p := range layer.Points {
			assert.Equal(t, fixed, p.Components()[d], s.String())
		}
	}
	// Second layer index fastest
	assert.Equal(t, vec(1, 0, 1), g.Layer(geometry3D.Eta0).At(1, 1))
	assert.Equal(t, vec(0, 2, 3), g.Layer(geometry3D.Xi0).At(2, 3))
	assert.Equal(t, vec(1, 2, 3), g.Layer(geometry3D.Zeta1).At(1, 2))
}
