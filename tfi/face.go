package tfi

import (
	"github.com/notargets/tfimesh/geometry3D"
)

// InterpolateFace fills a quadrilateral surface from its four boundary curves
// by bilinear transfinite interpolation. The result is numA x numB where numA
// is the length of the B curves and numB the length of the A curves.
func InterpolateFace(face geometry3D.Face) (surface *Grid2D, err error) {
	if err = geometry3D.ValidateFace(face); err != nil {
		return
	}
	var (
		a0, a1       = face.DirA0(), face.DirA1() // left, right
		b0, b1       = face.DirB0(), face.DirB1() // bottom, top
		numA, numB   = len(b0), len(a0)
		lastA, lastB = numA - 1, numB - 1
	)
	surface = NewGrid2D(numA, numB)
	for iA := 1; iA < lastA; iA++ {
		a := geometry3D.UniformParameter(iA, numA).Val()
		for iB := 1; iB < lastB; iB++ {
			b := geometry3D.UniformParameter(iB, numB).Val()
			surface.Set(iA, iB, a0[iB].Scale(1-a).
				Add(a1[iB].Scale(a)).
				Add(b0[iA].Scale(1-b)).
				Add(b1[iA].Scale(b)).
				Sub(b0[0].Scale((1-a)*(1-b))).
				Sub(b1[0].Scale((1-a)*b)).
				Sub(b0[lastA].Scale(a*(1-b))).
				Sub(b1[lastA].Scale(a*b)))
		}
	}
	// The blend reduces to the curves on the boundary, copy them to keep it exact
	for iA := 0; iA < numA; iA++ {
		surface.Set(iA, 0, b0[iA])
		surface.Set(iA, lastB, b1[iA])
	}
	for iB := 0; iB < numB; iB++ {
		surface.Set(0, iB, a0[iB])
		surface.Set(lastA, iB, a1[iB])
	}
	return
}
