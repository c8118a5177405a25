package geometry3D

// Hexahedron is a block with straight edges between its eight corner points
type Hexahedron struct {
	curveGeometry
	corners [8]Vector
}

// NewHexahedron builds the twelve straight edges of a block. The corners are
// ordered as in CornerOrder:
//
//	p0 (xi=0, eta=0, zeta=0)    p4 (xi=1, eta=0, zeta=0)
//	p1 (xi=0, eta=1, zeta=0)    p5 (xi=1, eta=1, zeta=0)
//	p2 (xi=0, eta=1, zeta=1)    p6 (xi=1, eta=1, zeta=1)
//	p3 (xi=0, eta=0, zeta=1)    p7 (xi=1, eta=0, zeta=1)
func NewHexahedron(numXiPoints, numEtaPoints, numZetaPoints int, corners [8]Vector) (h *Hexahedron, err error) {
	var (
		counts [3]int
	)
	if counts, err = checkCounts(numXiPoints, numEtaPoints, numZetaPoints); err != nil {
		return
	}
	h = &Hexahedron{
		curveGeometry: curveGeometry{counts: counts},
		corners:       corners,
	}
	for _, l := range AllCurveLabels() {
		start, end := l.Endpoints()
		h.curves[l] = straightEdge(h.Corner(start), h.Corner(end), counts[l.Free()])
	}
	return
}

// NewBox is the axis aligned hexahedron spanning min to max
func NewBox(numXiPoints, numEtaPoints, numZetaPoints int, min, max Vector) (*Hexahedron, error) {
	var (
		corners [8]Vector
		lo, hi  = min.Components(), max.Components()
	)
	for n, c := range CornerOrder {
		var x [3]float64
		for d := 0; d < 3; d++ {
			x[d] = lo[d]
			if c[d] == 1 {
				x[d] = hi[d]
			}
		}
		corners[n] = NewVector(x[0], x[1], x[2])
	}
	return NewHexahedron(numXiPoints, numEtaPoints, numZetaPoints, corners)
}

// Corner returns the input point at corner c
func (h *Hexahedron) Corner(c Corner) Vector {
	return h.corners[CornerIndex(c)]
}
