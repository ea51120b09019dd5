package utils

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type Norms struct {
	L1, L2, LInf float64
	Sum          float64
	Len          int
}

func NewNorms(v []float64) (n Norms) {
	n.Len = len(v)
	if n.Len == 0 {
		return
	}
	n.L1 = floats.Norm(v, 1)
	n.L2 = floats.Norm(v, 2)
	n.LInf = floats.Norm(v, math.Inf(1))
	n.Sum = floats.Sum(v)
	return
}

// VecData returns the elements of v as a slice, sharing storage when v is
// a contiguous *mat.VecDense
func VecData(v mat.Vector) (d []float64) {
	if vd, ok := v.(*mat.VecDense); ok {
		raw := vd.RawVector()
		if raw.Inc == 1 {
			return raw.Data[:vd.Len()]
		}
	}
	d = make([]float64, v.Len())
	for i := range d {
		d[i] = v.AtVec(i)
	}
	return
}

func NewVecConst(N int, val float64) (V *mat.VecDense) {
	var (
		x = make([]float64, N)
	)
	for i := 0; i < N; i++ {
		x[i] = val
	}
	V = mat.NewVecDense(N, x)
	return
}
