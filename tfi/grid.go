package tfi

import (
	"github.com/notargets/tfimesh/geometry3D"
	"github.com/notargets/tfimesh/utils"
)

// Grid2D is a dense numA x numB array of points, B index fastest
type Grid2D struct {
	NA, NB int
	Points []geometry3D.Vector
	r      utils.R2
}

func NewGrid2D(numA, numB int) *Grid2D {
	return &Grid2D{
		NA:     numA,
		NB:     numB,
		Points: make([]geometry3D.Vector, numA*numB),
		r:      utils.NewR2(numA, numB),
	}
}

func (g *Grid2D) At(iA, iB int) geometry3D.Vector {
	return g.Points[g.r.Index(iA, iB)]
}

func (g *Grid2D) Set(iA, iB int, v geometry3D.Vector) {
	g.Points[g.r.Index(iA, iB)] = v
}

// Column copies the points with B index iB, ordered by A index
func (g *Grid2D) Column(iB int) []geometry3D.Vector {
	return utils.Gather(g.Points, g.r.Range(":", iB))
}

// Grid3D is a dense numXi x numEta x numZeta array of points, zeta index fastest
type Grid3D struct {
	NXi, NEta, NZeta int
	Points           []geometry3D.Vector
	r                utils.R3
}

func NewGrid3D(numXi, numEta, numZeta int) *Grid3D {
	r := utils.NewR3(numXi, numEta, numZeta)
	return &Grid3D{
		NXi:    numXi,
		NEta:   numEta,
		NZeta:  numZeta,
		Points: make([]geometry3D.Vector, r.Size()),
		r:      r,
	}
}

func (g *Grid3D) At(i, j, k int) geometry3D.Vector {
	return g.Points[g.r.Index(i, j, k)]
}

func (g *Grid3D) Set(i, j, k int, v geometry3D.Vector) {
	g.Points[g.r.Index(i, j, k)] = v
}

func (g *Grid3D) layerIndex(s geometry3D.Side) (I utils.Index, numA, numB int) {
	var (
		d, val = s.Normal()
		dims   = [3]interface{}{":", ":", ":"}
		counts = [3]int{g.NXi, g.NEta, g.NZeta}
		layer  []int
	)
	dims[d] = 0
	if val == 1 {
		dims[d] = "end"
	}
	for n := range counts {
		if geometry3D.Direction(n) != d {
			layer = append(layer, counts[n])
		}
	}
	return g.r.Range(dims[0], dims[1], dims[2]), layer[0], layer[1]
}

// Layer copies the boundary layer on side s into a 2D grid laid out the same
// way as the interpolated face of that side
func (g *Grid3D) Layer(s geometry3D.Side) (layer *Grid2D) {
	I, numA, numB := g.layerIndex(s)
	layer = NewGrid2D(numA, numB)
	layer.Points = utils.Gather(g.Points, I)
	return
}

// SetLayer overwrites the boundary layer on side s with the points of face
func (g *Grid3D) SetLayer(s geometry3D.Side, face *Grid2D) {
	I, _, _ := g.layerIndex(s)
	utils.Scatter(g.Points, I, face.Points)
}
