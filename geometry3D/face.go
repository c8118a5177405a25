package geometry3D

import (
	"fmt"
)

// Face supplies the four boundary curves of a quadrilateral surface. DirA0 and
// DirA1 run in the B direction and have equal length; DirB0 and DirB1 run in
// the A direction and have equal length.
//
//	A0[0] = B0[0]     A0[last] = B1[0]
//	A1[0] = B0[last]  A1[last] = B1[last]
type Face interface {
	DirA0() []Vector
	DirA1() []Vector
	DirB0() []Vector
	DirB1() []Vector
}

// Surface is a Face held as four explicit curves. The returned slices are
// shared and must not be modified.
type Surface struct {
	dirA0, dirA1, dirB0, dirB1 []Vector
}

func NewSurface(dirA0, dirA1, dirB0, dirB1 []Vector) *Surface {
	return &Surface{
		dirA0: dirA0,
		dirA1: dirA1,
		dirB0: dirB0,
		dirB1: dirB1,
	}
}

func (s *Surface) DirA0() []Vector { return s.dirA0 }
func (s *Surface) DirA1() []Vector { return s.dirA1 }
func (s *Surface) DirB0() []Vector { return s.dirB0 }
func (s *Surface) DirB1() []Vector { return s.dirB1 }

// NewQuadFace builds a surface with straight edges p0--p1--p2--p3--p0.
// A0 joins p0-p1, A1 joins p3-p2, B0 joins p0-p3 and B1 joins p1-p2, so the
// interpolated grid has p0 at [0][0], p1 at [0][numB-1], p3 at [numA-1][0]
// and p2 at [numA-1][numB-1].
func NewQuadFace(p0, p1, p2, p3 Vector, numAPoints, numBPoints int) (s *Surface, err error) {
	if numAPoints < 2 || numBPoints < 2 {
		err = fmt.Errorf("quad face needs at least 2 points per direction, got %d x %d",
			numAPoints, numBPoints)
		return
	}
	s = NewSurface(
		straightEdge(p0, p1, numBPoints),
		straightEdge(p3, p2, numBPoints),
		straightEdge(p0, p3, numAPoints),
		straightEdge(p1, p2, numAPoints))
	return
}

func straightEdge(pa, pb Vector, n int) (pts []Vector) {
	pts = make([]Vector, n)
	for i := 0; i < n; i++ {
		pts[i] = Between(pa, pb, UniformParameter(i, n))
	}
	return
}

// ValidateFace checks the curve lengths and corner agreement of f
func ValidateFace(f Face) (err error) {
	var (
		names  = [4]string{"A0", "A1", "B0", "B1"}
		curves = [4][]Vector{f.DirA0(), f.DirA1(), f.DirB0(), f.DirB1()}
	)
	for n, c := range curves {
		if len(c) < 2 {
			return &InsufficientSamplesError{Curve: names[n], Count: len(c)}
		}
	}
	if len(curves[0]) != len(curves[1]) {
		return fmt.Errorf("face curves A0 and A1 differ in length: %d != %d",
			len(curves[0]), len(curves[1]))
	}
	if len(curves[2]) != len(curves[3]) {
		return fmt.Errorf("face curves B0 and B1 differ in length: %d != %d",
			len(curves[2]), len(curves[3]))
	}
	var (
		a0, a1, b0, b1 = curves[0], curves[1], curves[2], curves[3]
		lastA, lastB   = len(a0) - 1, len(b0) - 1
	)
	corners := []struct {
		name   string
		curves []string
		p, q   Vector
	}{
		{"A0-B0", []string{"A0", "B0"}, a0[0], b0[0]},
		{"A0-B1", []string{"A0", "B1"}, a0[lastA], b1[0]},
		{"A1-B0", []string{"A1", "B0"}, a1[0], b0[lastB]},
		{"A1-B1", []string{"A1", "B1"}, a1[lastA], b1[lastB]},
	}
	for _, c := range corners {
		if d := c.p.Dist(c.q); !(d < Tolerance) {
			return &GeometryDiscontinuityError{Corner: c.name, Curves: c.curves, Distance: d}
		}
	}
	return
}
