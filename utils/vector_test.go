package utils

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/stretchr/testify/assert"
)

func TestNorms(t *testing.T) {
	{
		n := NewNorms([]float64{3, -4, 0})
		assert.InDelta(t, 7., n.L1, 1.e-14)
		assert.InDelta(t, 5., n.L2, 1.e-14)
		assert.InDelta(t, 4., n.LInf, 1.e-14)
		assert.InDelta(t, -1., n.Sum, 1.e-14)
		assert.Equal(t, 3, n.Len)
	}
	{
		n := NewNorms(nil)
		assert.Equal(t, Norms{}, n)
	}
	{
		n := NewNorms([]float64{1, math.NaN()})
		assert.True(t, math.IsNaN(n.L2))
	}
}

func TestVecData(t *testing.T) {
	{ // Shared storage for a dense vector
		v := NewVecConst(3, 2)
		d := VecData(v)
		assert.Equal(t, []float64{2, 2, 2}, d)
		d[0] = 5
		assert.Equal(t, 5., v.AtVec(0))
	}
	{ // Strided views are copied
		A := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
		col := A.ColView(1)
		assert.Equal(t, []float64{2, 4}, VecData(col))
	}
}
