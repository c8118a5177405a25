package utils

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

// Gather copies src[I[n]] into position n of the result
func Gather[T any](src []T, I Index) (r []T) {
	r = make([]T, len(I))
	for n, ind := range I {
		r[n] = src[ind]
	}
	return
}

// Scatter writes vals[n] into dst[I[n]]
func Scatter[T any](dst []T, I Index, vals []T) {
	for n, ind := range I {
		dst[ind] = vals[n]
	}
}
