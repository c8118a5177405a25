package utils

type R1 struct {
	Max int
}

func NewR1(imax int) R1 {
	return R1{imax}
}

type R2 struct {
	Ir, Jr R1
}

func NewR2(imax, jmax int) R2 {
	return R2{
		NewR1(imax),
		NewR1(jmax),
	}
}

func (r R2) Index(i, j int) int {
	return j + r.Jr.Max*i // Row Major
}

func (r R2) Range(dimI, dimJ interface{}) (I Index) {
	var (
		i1, i2 = ParseDim(dimI, r.Ir.Max)
		j1, j2 = ParseDim(dimJ, r.Jr.Max)
	)
	I = NewIndex((i2 - i1) * (j2 - j1))
	var ind int
	for i := i1; i < i2; i++ {
		for j := j1; j < j2; j++ {
			I[ind] = r.Index(i, j)
			ind++
		}
	}
	return
}

type R3 struct {
	Ir, Jr, Kr R1
}

func NewR3(imax, jmax, kmax int) R3 {
	return R3{
		NewR1(imax),
		NewR1(jmax),
		NewR1(kmax),
	}
}

func (r R3) Size() int {
	return r.Ir.Max * r.Jr.Max * r.Kr.Max
}

func (r R3) Index(i, j, k int) int {
	return k + r.Kr.Max*(j+r.Jr.Max*i) // Row Major, k fastest
}

// Range returns the flat indices of a sub-block, i outermost and k innermost
func (r R3) Range(dimI, dimJ, dimK interface{}) (I Index) {
	var (
		i1, i2 = ParseDim(dimI, r.Ir.Max)
		j1, j2 = ParseDim(dimJ, r.Jr.Max)
		k1, k2 = ParseDim(dimK, r.Kr.Max)
	)
	I = NewIndex((i2 - i1) * (j2 - j1) * (k2 - k1))
	var ind int
	for i := i1; i < i2; i++ {
		for j := j1; j < j2; j++ {
			for k := k1; k < k2; k++ {
				I[ind] = r.Index(i, j, k)
				ind++
			}
		}
	}
	return
}

// ParseDim converts a dimension selector to a loop range [i1, i2)
//
//	":"   = full range, from 0 to max
//	"end" = last index, from max-1 to max
//	N     = single index, from N to N+1
//
// Any other selector yields an empty range.
func ParseDim(dimI interface{}, max int) (i1, i2 int) {
	switch dim := dimI.(type) {
	case string:
		switch dim {
		case "end":
			i1, i2 = max-1, max
		case ":":
			i1, i2 = 0, max
		}
	case int:
		i1, i2 = dim, dim+1
	}
	return
}
