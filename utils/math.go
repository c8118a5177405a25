package utils

// MapRange linearly maps val from the interval [inMin, inMax] onto [outMin, outMax].
// val == inMin yields outMin exactly and val == inMax yields outMax exactly.
func MapRange(val, inMin, inMax, outMin, outMax float64) float64 {
	var (
		frac = (val - inMin) / (inMax - inMin)
	)
	return outMin*(1-frac) + outMax*frac
}
