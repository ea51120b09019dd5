package LidDrivenCavity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/positroncascade/lid-driven-cavity-problem/StaggeredGrid"
)

func TestUnpackState(t *testing.T) {
	l, err := NewLayout(newGoldenGraph(t))
	require.NoError(t, err)
	{
		st, err := UnpackState(goldenX, l)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3, 4}, st.P)
		assert.Equal(t, []float64{0.5, 9, -0.25, 7}, st.ExtendedU)
		assert.Equal(t, []float64{0.5, -0.25}, st.U)
		assert.Equal(t, []float64{0.2, -0.4}, st.V)
	}
	{ // Round trip, placeholders come back as zero
		X, err := PackState(l, []float64{1, 2, 3, 4}, []float64{0.5, -0.25}, []float64{0.2, -0.4})
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 0.5, 0.2, 2, 0, -0.4, 3, -0.25, 0, 4, 0, 0}, X)
	}
	{
		_, err := UnpackState(make([]float64, 13), l)
		assert.ErrorIs(t, err, ErrStateLength)
		_, err = PackState(l, make([]float64, 4), make([]float64, 3), make([]float64, 2))
		assert.ErrorIs(t, err, ErrStateLength)
	}
}

func TestStateTimeLevels(t *testing.T) {
	g := newGoldenGraph(t)
	l, err := NewLayout(g)
	require.NoError(t, err)
	{
		X, err := InitialState(g, l)
		require.NoError(t, err)
		assert.Equal(t, []float64{0, 0.1, 0.3, 0, 0, -0.1, 0, 0.2, 0, 0, 0, 0}, X)
	}
	{ // A converged step becomes the previous level of the next one
		st, err := UnpackState(goldenX, l)
		require.NoError(t, err)
		require.NoError(t, st.StoreAsPrevious(g))
		assert.Equal(t, []float64{0.5, -0.25}, g.NSXMesh.PhiOld)
		assert.Equal(t, []float64{0.2, -0.4}, g.NSYMesh.PhiOld)
		// With the state equal to the previous level the transient term vanishes
		rf, err := NewResidualFunction(g)
		require.NoError(t, err)
		for i := 0; i < l.NumU; i++ {
			assert.Equal(t, 0., rf.xMomentumTerms(st, i).Transient)
		}
		for i := 0; i < l.NumV; i++ {
			assert.Equal(t, 0., rf.yMomentumTerms(st, i).Transient)
		}
	}
	{
		g3, err := StaggeredGrid.NewLidDrivenCavity(3, 3, 1., 1., 1., 0.01, 0.1, 1.)
		require.NoError(t, err)
		st, err := UnpackState(goldenX, l)
		require.NoError(t, err)
		assert.ErrorIs(t, st.StoreAsPrevious(g3), StaggeredGrid.ErrShapeMismatch)
	}
}
