package geometry3D

import (
	"fmt"
)

// Geometry supplies the twelve boundary curves of a logically hexahedral block.
// Each curve is sampled at the point count of its free coordinate.
type Geometry interface {
	NumXiPoints() int
	NumEtaPoints() int
	NumZetaPoints() int
	// CurvePoint returns sample index of the curve, 0 <= index < count of l.Free()
	CurvePoint(l CurveLabel, index int) Vector
}

// NumPoints returns the point count of g along direction d
func NumPoints(g Geometry, d Direction) int {
	switch d {
	case Xi:
		return g.NumXiPoints()
	case Eta:
		return g.NumEtaPoints()
	default:
		return g.NumZetaPoints()
	}
}

// SampleCurve copies every sample of curve l out of g
func SampleCurve(g Geometry, l CurveLabel) (pts []Vector) {
	pts = make([]Vector, NumPoints(g, l.Free()))
	for i := range pts {
		pts[i] = g.CurvePoint(l, i)
	}
	return
}

// ExtractFace regroups the four boundary curves of side s into a Face.
// No interpolation takes place.
func ExtractFace(g Geometry, s Side) *Surface {
	var (
		c = FaceCurves(s)
	)
	return NewSurface(
		SampleCurve(g, c[0]), SampleCurve(g, c[1]),
		SampleCurve(g, c[2]), SampleCurve(g, c[3]))
}

// BoundaryCurves holds the samples of all twelve curves, indexed by label
type BoundaryCurves [NumCurves][]Vector

// curveGeometry is the storage shared by the concrete geometries
type curveGeometry struct {
	counts [3]int
	curves BoundaryCurves
}

func (cg *curveGeometry) NumXiPoints() int   { return cg.counts[Xi] }
func (cg *curveGeometry) NumEtaPoints() int  { return cg.counts[Eta] }
func (cg *curveGeometry) NumZetaPoints() int { return cg.counts[Zeta] }

func (cg *curveGeometry) CurvePoint(l CurveLabel, index int) Vector {
	return cg.curves[l][index]
}

func checkCounts(numXi, numEta, numZeta int) (counts [3]int, err error) {
	counts = [3]int{numXi, numEta, numZeta}
	for d, n := range counts {
		if n < 2 {
			err = fmt.Errorf("number of %s points must be at least 2, got %d", Direction(d), n)
			return
		}
	}
	return
}
