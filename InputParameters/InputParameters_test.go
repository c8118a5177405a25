package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/tfimesh/geometry3D"
)

func TestInputParameters3D(t *testing.T) {
	fileInput := []byte(`
Title: Channel block
NumXiPoints: 100
NumEtaPoints: 10
NumZetaPoints: 12
Corners: # p0 through p7
  - [0, 0, 0]
  - [0, 0.1, 0]
  - [0, 0.1, 0.1]
  - [0, 0, 0.1]
  - [1, 0, 0]
  - [1, 0.1, 0]
  - [1, 0.1, 0.1]
  - [1, 0, 0.1]
OutputFile: mesh
Format: vtk
ParallelDegree: 4
`)
	var input InputParameters3D
	require.NoError(t, input.Parse(fileInput))
	input.Print()
	assert.Equal(t, "Channel block", input.Title)
	assert.Equal(t, 100, input.NumXiPoints)
	assert.Equal(t, 10, input.NumEtaPoints)
	assert.Equal(t, 12, input.NumZetaPoints)
	assert.Equal(t, "vtk", input.Format)
	assert.Equal(t, 4, input.ParallelDegree)
	assert.Equal(t, "", input.GeometryFile)

	pts, err := input.CornerPoints(8)
	require.NoError(t, err)
	assert.Equal(t, geometry3D.NewVector(0, 0.1, 0.1), pts[2])
	assert.Equal(t, geometry3D.NewVector(1, 0, 0.1), pts[7])
	_, err = input.CornerPoints(4)
	assert.Error(t, err)

	input.Corners[3] = []float64{0, 0}
	_, err = input.CornerPoints(8)
	assert.Error(t, err)

	assert.Error(t, input.Parse([]byte("NumXiPoints: [1, 2]")))
}
