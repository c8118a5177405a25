package geometry3D

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/tfimesh/utils"
)

// Tolerance is the distance within which two points are considered coincident
const Tolerance = 1e-8

// RawCurves holds boundary curve samples as read from an input source, with
// arbitrary spacing and point count per curve
type RawCurves map[CurveLabel][]Vector

// ValidateCurves checks that every curve has at least 2 points and that the
// three curves meeting at each corner agree there within Tolerance. The first
// offending curve or corner is reported.
func ValidateCurves(raw RawCurves) (err error) {
	for _, l := range AllCurveLabels() {
		if n := len(raw[l]); n < 2 {
			return &InsufficientSamplesError{Curve: l.String(), Count: n}
		}
	}
	for _, c := range CornerOrder {
		var (
			labels = CurvesAtCorner(c)
			pts    [3]Vector
		)
		for n, l := range labels {
			pts[n] = curveEnd(raw[l], c[l.Free()])
		}
		for n := 1; n < 3; n++ {
			if d := pts[0].Dist(pts[n]); !(d < Tolerance) {
				return &GeometryDiscontinuityError{
					Corner:   c.String(),
					Curves:   []string{labels[0].String(), labels[1].String(), labels[2].String()},
					Distance: d,
				}
			}
		}
	}
	return
}

func curveEnd(pts []Vector, end int) Vector {
	if end == 0 {
		return pts[0]
	}
	return pts[len(pts)-1]
}

// ParameterMap returns the cumulative chord length at each point normalized to
// [0,1]. A curve of zero total length gets evenly spaced parameters.
func ParameterMap(pts []Vector) (pm []float64) {
	var (
		n       = len(pts)
		lengths = make([]float64, n)
	)
	pm = make([]float64, n)
	if n < 2 {
		return
	}
	for i := 1; i < n; i++ {
		lengths[i] = pts[i].Dist(pts[i-1])
	}
	floats.CumSum(pm, lengths)
	total := pm[n-1]
	if total == 0 {
		for i := range pm {
			pm[i] = UniformParameter(i, n).Val()
		}
		return
	}
	floats.Scale(1/total, pm)
	pm[n-1] = 1
	return
}

// Resample places numPoints points along the polyline pts at evenly spaced
// arc-length parameters. The parameter map pm must be ParameterMap(pts).
// The first and last resampled points are the curve endpoints.
func Resample(name string, pts []Vector, pm []float64, numPoints int) (out []Vector, err error) {
	var (
		last = len(pts) - 1
	)
	if len(pts) < 2 {
		err = &InsufficientSamplesError{Curve: name, Count: len(pts)}
		return
	}
	if numPoints < 2 {
		err = fmt.Errorf("curve %s: number of resampled points must be at least 2, got %d", name, numPoints)
		return
	}
	out = make([]Vector, numPoints)
	for i := 0; i < numPoints; i++ {
		t := UniformParameter(i, numPoints).Val()
		iR := 1 + sort.Search(last, func(k int) bool {
			return pm[k+1]+Tolerance > t
		})
		if iR > last || !(pm[iR-1]-Tolerance < t) {
			out, err = nil, &ResampleBracketError{Curve: name, Index: i, Target: t}
			return
		}
		out[i] = remap(t, pm[iR-1], pm[iR], pts[iR-1], pts[iR])
	}
	out[0], out[numPoints-1] = pts[0], pts[last]
	return
}

func remap(t, parL, parR float64, pL, pR Vector) Vector {
	if parR == parL {
		return pL
	}
	return NewVector(
		utils.MapRange(t, parL, parR, pL.X, pR.X),
		utils.MapRange(t, parL, parR, pL.Y, pR.Y),
		utils.MapRange(t, parL, parR, pL.Z, pR.Z),
	)
}

// CurveGeometry is a block whose boundary curves are resampled from sparse,
// non-uniformly spaced input points by arc-length parameterization
type CurveGeometry struct {
	curveGeometry
}

func NewCurveGeometry(raw RawCurves, numXiPoints, numEtaPoints, numZetaPoints int) (cg *CurveGeometry, err error) {
	var (
		counts [3]int
	)
	if counts, err = checkCounts(numXiPoints, numEtaPoints, numZetaPoints); err != nil {
		return
	}
	if err = ValidateCurves(raw); err != nil {
		return
	}
	cg = &CurveGeometry{curveGeometry{counts: counts}}
	for _, l := range AllCurveLabels() {
		pts := raw[l]
		if cg.curves[l], err = Resample(l.String(), pts, ParameterMap(pts), counts[l.Free()]); err != nil {
			return nil, err
		}
		log.Debug().Str("curve", l.String()).Int("raw", len(pts)).
			Int("resampled", counts[l.Free()]).Msg("resampled boundary curve")
	}
	return
}
