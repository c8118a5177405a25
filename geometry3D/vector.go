package geometry3D

import (
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is an immutable point or displacement in 3D space
type Vector r3.Vec

func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

func (v Vector) Add(w Vector) Vector {
	return Vector(r3.Add(r3.Vec(v), r3.Vec(w)))
}

func (v Vector) Sub(w Vector) Vector {
	return Vector(r3.Sub(r3.Vec(v), r3.Vec(w)))
}

func (v Vector) Scale(s float64) Vector {
	return Vector(r3.Scale(s, r3.Vec(v)))
}

// Dist is the Euclidean distance between v and w
func (v Vector) Dist(w Vector) float64 {
	return r3.Norm(r3.Sub(r3.Vec(v), r3.Vec(w)))
}

func (v Vector) Components() [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Between returns the point a fraction t of the way from p1 to p2.
// t=0 yields p1 and t=1 yields p2 exactly.
func Between(p1, p2 Vector, t Parameter) Vector {
	switch t.val {
	case 0:
		return p1
	case 1:
		return p2
	}
	return p1.Scale(1 - t.val).Add(p2.Scale(t.val))
}

// Parameter is a fractional position in [0,1] along a curve, face or volume direction
type Parameter struct {
	val float64
}

func NewParameter(val float64) (p Parameter, err error) {
	if !(val >= 0 && val <= 1) {
		err = &ParameterRangeError{Value: val}
		return
	}
	p = Parameter{val: val}
	return
}

func (p Parameter) Val() float64 {
	return p.val
}

// UniformParameter is the i-th of n evenly spaced parameters, 0 and 1 inclusive
func UniformParameter(i, n int) Parameter {
	if n < 2 || i <= 0 {
		return Parameter{val: 0}
	}
	if i >= n-1 {
		return Parameter{val: 1}
	}
	return Parameter{val: float64(i) / float64(n-1)}
}
