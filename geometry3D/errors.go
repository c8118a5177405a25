package geometry3D

import (
	"fmt"
	"strings"
)

// ParameterRangeError reports a normalized parameter outside [0,1]
type ParameterRangeError struct {
	Value float64
}

func (e *ParameterRangeError) Error() string {
	return fmt.Sprintf("parameter value %v must be within the range 0 and 1", e.Value)
}

// InsufficientSamplesError reports a boundary curve with fewer than 2 points
type InsufficientSamplesError struct {
	Curve string
	Count int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("curve %s has %d points, at least 2 are required", e.Curve, e.Count)
}

// GeometryDiscontinuityError reports boundary curves that do not meet at a shared corner
type GeometryDiscontinuityError struct {
	Corner   string
	Curves   []string
	Distance float64
}

func (e *GeometryDiscontinuityError) Error() string {
	return fmt.Sprintf("curves [%s] do not overlap at corner %s: separation %.3e exceeds tolerance %.0e",
		strings.Join(e.Curves, ", "), e.Corner, e.Distance, Tolerance)
}

// ResampleBracketError reports a target parameter with no bracketing pair in a
// curve's arc-length table
type ResampleBracketError struct {
	Curve  string
	Index  int
	Target float64
}

func (e *ResampleBracketError) Error() string {
	return fmt.Sprintf("curve %s: no parameter bracket contains target %v for resampled point %d",
		e.Curve, e.Target, e.Index)
}
