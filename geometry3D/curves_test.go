package geometry3D

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawFromGeometry(g Geometry) RawCurves {
	raw := RawCurves{}
	for _, l := range AllCurveLabels() {
		raw[l] = SampleCurve(g, l)
	}
	return raw
}

// unevenCurves places each edge of the block at parameters 0, 0.1, 0.7, 1
func unevenCurves(t *testing.T, corners [8]Vector) RawCurves {
	var (
		raw  = RawCurves{}
		pars []Parameter
	)
	for _, val := range []float64{0, 0.1, 0.7, 1} {
		p, err := NewParameter(val)
		require.NoError(t, err)
		pars = append(pars, p)
	}
	for _, l := range AllCurveLabels() {
		start, end := l.Endpoints()
		for _, p := range pars {
			raw[l] = append(raw[l], Between(corners[CornerIndex(start)], corners[CornerIndex(end)], p))
		}
	}
	return raw
}

func assertVectorsNear(t *testing.T, want, got []Vector, tol float64) {
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.InDelta(t, 0., want[i].Dist(got[i]), tol, "point %d: %v != %v", i, want[i], got[i])
	}
}

func TestParameterMap(t *testing.T) {
	x := func(vals ...float64) (pts []Vector) {
		for _, v := range vals {
			pts = append(pts, NewVector(v, 0, 0))
		}
		return
	}
	assert.Equal(t, []float64{0, 0.25, 0.75, 1}, ParameterMap(x(0, 1, 3, 4)))
	// Degenerate curve falls back to uniform spacing
	assert.Equal(t, []float64{0, 0.5, 1}, ParameterMap(x(2, 2, 2)))
	// Repeated points share a parameter
	assert.Equal(t, []float64{0, 0, 1}, ParameterMap(x(0, 0, 2)))
	{ // Bent curve, chord length not straight line distance
		pts := []Vector{NewVector(0, 0, 0), NewVector(3, 0, 0), NewVector(3, 1, 0)}
		pm := ParameterMap(pts)
		assert.Equal(t, 0., pm[0])
		assert.InDelta(t, 0.75, pm[1], 1.e-15)
		assert.Equal(t, 1., pm[2])
	}
}

func TestResample(t *testing.T) {
	{ // Evenly spaced input reproduces itself
		var pts []Vector
		for i := 0; i < 5; i++ {
			pts = append(pts, Between(NewVector(0, 0, 0), NewVector(1, 2, -1), UniformParameter(i, 5)))
		}
		out, err := Resample("line", pts, ParameterMap(pts), 5)
		require.NoError(t, err)
		assertVectorsNear(t, pts, out, 1.e-8)
		assert.Equal(t, pts[0], out[0])
		assert.Equal(t, pts[4], out[4])
	}
	{ // Uneven input is redistributed by arc length
		pts := []Vector{NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(3, 0, 0), NewVector(4, 0, 0)}
		out, err := Resample("uneven", pts, ParameterMap(pts), 5)
		require.NoError(t, err)
		assertVectorsNear(t, []Vector{
			NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(2, 0, 0),
			NewVector(3, 0, 0), NewVector(4, 0, 0)}, out, 1.e-12)
	}
	{ // Corner of a bent curve is hit exactly
		pts := []Vector{NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(1, 1, 0)}
		out, err := Resample("bent", pts, ParameterMap(pts), 3)
		require.NoError(t, err)
		assert.Equal(t, pts, out)
	}
	{ // Two points keeps only the endpoints
		pts := []Vector{NewVector(0, 0, 0), NewVector(0.5, 0.1, 0), NewVector(1, 1, 1)}
		out, err := Resample("ends", pts, ParameterMap(pts), 2)
		require.NoError(t, err)
		assert.Equal(t, []Vector{pts[0], pts[2]}, out)
	}
	{
		_, err := Resample("short", []Vector{NewVector(0, 0, 0)}, []float64{0}, 3)
		var samplesErr *InsufficientSamplesError
		require.True(t, errors.As(err, &samplesErr))
		assert.Equal(t, "short", samplesErr.Curve)
	}
	{ // Fewer than two resampled points is an error, not a default
		pts := []Vector{NewVector(0, 0, 0), NewVector(1, 0, 0)}
		for _, n := range []int{-1, 0, 1} {
			out, err := Resample("sparse", pts, ParameterMap(pts), n)
			require.Error(t, err, "n=%d", n)
			assert.Contains(t, err.Error(), "curve sparse")
			assert.Nil(t, out)
		}
	}
	{ // A corrupt parameter map has no bracket
		nan := math.NaN()
		pts := []Vector{NewVector(0, 0, 0), NewVector(1, 0, 0), NewVector(2, 0, 0)}
		_, err := Resample("corrupt", pts, []float64{nan, nan, nan}, 3)
		var bracketErr *ResampleBracketError
		require.True(t, errors.As(err, &bracketErr))
		assert.Equal(t, "corrupt", bracketErr.Curve)
		assert.Equal(t, 0, bracketErr.Index)
	}
}

func TestValidateCurves(t *testing.T) {
	h, err := NewHexahedron(3, 3, 3, unitCubeCorners())
	require.NoError(t, err)
	require.NoError(t, ValidateCurves(rawFromGeometry(h)))
	{
		raw := rawFromGeometry(h)
		delete(raw, Xi1Eta1)
		err = ValidateCurves(raw)
		var samplesErr *InsufficientSamplesError
		require.True(t, errors.As(err, &samplesErr))
		assert.Equal(t, "xi1_eta1", samplesErr.Curve)
		assert.Equal(t, 0, samplesErr.Count)
	}
	// Move the far end of xi0_eta0, which meets the corner (0,0,1)
	shift := func(offset float64) RawCurves {
		raw := rawFromGeometry(h)
		pts := raw[Xi0Eta0]
		pts[len(pts)-1] = pts[len(pts)-1].Add(NewVector(offset, 0, 0))
		return raw
	}
	assert.NoError(t, ValidateCurves(shift(1.e-9)))
	for _, offset := range []float64{1.e-6, 1.e-2} {
		err = ValidateCurves(shift(offset))
		var gapErr *GeometryDiscontinuityError
		require.True(t, errors.As(err, &gapErr), "offset %v", offset)
		assert.Equal(t, Corner{0, 0, 1}.String(), gapErr.Corner)
		assert.Equal(t, []string{"eta0_zeta1", "xi0_zeta1", "xi0_eta0"}, gapErr.Curves)
		assert.InDelta(t, offset, gapErr.Distance, 1.e-12)
	}
	{
		err = ValidateCurves(shift(math.NaN()))
		var gapErr *GeometryDiscontinuityError
		assert.True(t, errors.As(err, &gapErr))
	}
}

func TestNewCurveGeometry(t *testing.T) {
	var (
		corners = [8]Vector{
			NewVector(0, 0, 0), NewVector(0, 2, 0), NewVector(0, 2.5, 1), NewVector(0, 0, 1.5),
			NewVector(3, 0, 0.5), NewVector(3, 2, 0), NewVector(3.5, 2, 1), NewVector(3, -0.5, 1),
		}
		raw = unevenCurves(t, corners)
	)
	cg, err := NewCurveGeometry(raw, 4, 5, 6)
	require.NoError(t, err)
	h, err := NewHexahedron(4, 5, 6, corners)
	require.NoError(t, err)
	assert.Equal(t, 4, cg.NumXiPoints())
	assert.Equal(t, 5, cg.NumEtaPoints())
	assert.Equal(t, 6, cg.NumZetaPoints())
	for _, l := range AllCurveLabels() {
		assertVectorsNear(t, SampleCurve(h, l), SampleCurve(cg, l), 1.e-12)
	}
	require.NoError(t, ValidateCurves(rawFromGeometry(cg)))

	_, err = NewCurveGeometry(raw, 4, 1, 6)
	assert.Error(t, err)

	raw[Eta1Zeta1] = []Vector{NewVector(0, 2, 1), NewVector(3.5, 2, 1)}
	_, err = NewCurveGeometry(raw, 4, 5, 6)
	var gapErr *GeometryDiscontinuityError
	assert.True(t, errors.As(err, &gapErr))
}
