package geometry3D

import "fmt"

// Direction is one of the three curvilinear coordinates of the block
type Direction uint8

const (
	Xi Direction = iota
	Eta
	Zeta
)

func (d Direction) String() string {
	return [...]string{"xi", "eta", "zeta"}[d]
}

// CurveLabel names one of the twelve boundary curves by its two fixed
// coordinates. The curve runs along the remaining (free) coordinate.
type CurveLabel uint8

const (
	// Zeta changing curves
	Xi0Eta0 CurveLabel = iota
	Xi0Eta1
	Xi1Eta0
	Xi1Eta1
	// Xi changing curves
	Eta0Zeta0
	Eta0Zeta1
	Eta1Zeta0
	Eta1Zeta1
	// Eta changing curves
	Xi0Zeta0
	Xi0Zeta1
	Xi1Zeta0
	Xi1Zeta1
	NumCurves
)

type curveInfo struct {
	name  string
	free  Direction
	fixed [3]int // Coordinate value per direction, the free entry is unused
}

var curveTable = [NumCurves]curveInfo{
	Xi0Eta0:   {"xi0_eta0", Zeta, [3]int{0, 0, -1}},
	Xi0Eta1:   {"xi0_eta1", Zeta, [3]int{0, 1, -1}},
	Xi1Eta0:   {"xi1_eta0", Zeta, [3]int{1, 0, -1}},
	Xi1Eta1:   {"xi1_eta1", Zeta, [3]int{1, 1, -1}},
	Eta0Zeta0: {"eta0_zeta0", Xi, [3]int{-1, 0, 0}},
	Eta0Zeta1: {"eta0_zeta1", Xi, [3]int{-1, 0, 1}},
	Eta1Zeta0: {"eta1_zeta0", Xi, [3]int{-1, 1, 0}},
	Eta1Zeta1: {"eta1_zeta1", Xi, [3]int{-1, 1, 1}},
	Xi0Zeta0:  {"xi0_zeta0", Eta, [3]int{0, -1, 0}},
	Xi0Zeta1:  {"xi0_zeta1", Eta, [3]int{0, -1, 1}},
	Xi1Zeta0:  {"xi1_zeta0", Eta, [3]int{1, -1, 0}},
	Xi1Zeta1:  {"xi1_zeta1", Eta, [3]int{1, -1, 1}},
}

func (l CurveLabel) String() string {
	if l >= NumCurves {
		return fmt.Sprintf("CurveLabel(%d)", uint8(l))
	}
	return curveTable[l].name
}

// Free is the coordinate that varies along the curve
func (l CurveLabel) Free() Direction {
	return curveTable[l].free
}

// Endpoints returns the hexahedron corners at the start (free=0) and end
// (free=1) of the curve
func (l CurveLabel) Endpoints() (start, end Corner) {
	var (
		info = curveTable[l]
	)
	for d := 0; d < 3; d++ {
		if Direction(d) == info.free {
			start[d], end[d] = 0, 1
			continue
		}
		start[d], end[d] = info.fixed[d], info.fixed[d]
	}
	return
}

func ParseCurveLabel(name string) (l CurveLabel, ok bool) {
	for l = 0; l < NumCurves; l++ {
		if curveTable[l].name == name {
			return l, true
		}
	}
	return 0, false
}

func AllCurveLabels() (labels []CurveLabel) {
	labels = make([]CurveLabel, NumCurves)
	for i := range labels {
		labels[i] = CurveLabel(i)
	}
	return
}

// Corner is a hexahedron vertex given by its (xi, eta, zeta) coordinates in {0,1}
type Corner [3]int

func (c Corner) String() string {
	return fmt.Sprintf("(xi=%d, eta=%d, zeta=%d)", c[0], c[1], c[2])
}

// CornerOrder is the vertex numbering used for the eight corner points of a
// hexahedron, following the VTK_HEXAHEDRON layout
var CornerOrder = [8]Corner{
	{0, 0, 0},
	{0, 1, 0},
	{0, 1, 1},
	{0, 0, 1},
	{1, 0, 0},
	{1, 1, 0},
	{1, 1, 1},
	{1, 0, 1},
}

func CornerIndex(c Corner) int {
	for n, cc := range CornerOrder {
		if cc == c {
			return n
		}
	}
	panic(fmt.Sprintf("invalid corner %v", c))
}

// CurvesAtCorner returns the three curves meeting at c, ordered by free direction
func CurvesAtCorner(c Corner) (labels [3]CurveLabel) {
	for l := CurveLabel(0); l < NumCurves; l++ {
		start, end := l.Endpoints()
		if start == c || end == c {
			labels[l.Free()] = l
		}
	}
	return
}

// Side is one of the six bounding faces of the hexahedron
type Side uint8

const (
	Xi0 Side = iota
	Xi1
	Eta0
	Eta1
	Zeta0
	Zeta1
	NumSides
)

func (s Side) String() string {
	return [...]string{"xi=0", "xi=1", "eta=0", "eta=1", "zeta=0", "zeta=1"}[s]
}

// Normal is the direction held fixed on the side, and Value its fixed value
func (s Side) Normal() (d Direction, value int) {
	return Direction(s / 2), int(s % 2)
}

// faceCurves lists the A0, A1, B0, B1 curves bounding each side
var faceCurves = [NumSides][4]CurveLabel{
	Xi0:   {Xi0Eta0, Xi0Eta1, Xi0Zeta0, Xi0Zeta1},
	Xi1:   {Xi1Eta0, Xi1Eta1, Xi1Zeta0, Xi1Zeta1},
	Eta0:  {Xi0Eta0, Xi1Eta0, Eta0Zeta0, Eta0Zeta1},
	Eta1:  {Xi0Eta1, Xi1Eta1, Eta1Zeta0, Eta1Zeta1},
	Zeta0: {Xi0Zeta0, Xi1Zeta0, Eta0Zeta0, Eta1Zeta0},
	Zeta1: {Xi0Zeta1, Xi1Zeta1, Eta0Zeta1, Eta1Zeta1},
}

// FaceCurves returns the A0, A1, B0, B1 boundary curves of side s
func FaceCurves(s Side) [4]CurveLabel {
	return faceCurves[s]
}
