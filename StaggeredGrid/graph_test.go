package StaggeredGrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/positroncascade/lid-driven-cavity-problem/types"
)

func TestMesh(t *testing.T) {
	{
		m, err := NewMesh(3, 2, nil)
		require.NoError(t, err)
		assert.Equal(t, 6, m.Len())
		assert.Equal(t, 4, m.Index(1, 1))
		assert.Equal(t, 1, m.Row(4))
		assert.Equal(t, 1, m.Col(4))
		assert.Equal(t, types.Left|types.Bottom, m.Boundary(0))
		assert.Equal(t, types.Bottom, m.Boundary(1))
		assert.Equal(t, types.Right|types.Top, m.Boundary(5))
		assert.Equal(t, "3x2", m.String())
	}
	{ // Bad inputs
		_, err := NewMesh(0, 2, nil)
		assert.ErrorIs(t, err, ErrShapeMismatch)
		_, err = NewMesh(2, 2, make([]float64, 3))
		assert.ErrorIs(t, err, ErrShapeMismatch)
	}
}

func TestNewLidDrivenCavity(t *testing.T) {
	{
		g, err := NewLidDrivenCavity(4, 3, 1., 0.6, 1., 0.01, 0.1, 1.)
		require.NoError(t, err)
		assert.Equal(t, 4, g.PressureMesh.Nx)
		assert.Equal(t, 3, g.PressureMesh.Ny)
		assert.Equal(t, 3, g.NSXMesh.Nx)
		assert.Equal(t, 3, g.NSXMesh.Ny)
		assert.Equal(t, 4, g.NSYMesh.Nx)
		assert.Equal(t, 2, g.NSYMesh.Ny)
		assert.Len(t, g.NSXMesh.PhiOld, 9)
		assert.Len(t, g.NSYMesh.PhiOld, 8)
		assert.InDelta(t, 0.25, g.Dx, 1.e-15)
		assert.InDelta(t, 0.2, g.Dy, 1.e-15)
		assert.Equal(t, 36, g.NumUnknowns())
		g.Print()
	}
	{ // Too small for a staggered layout
		_, err := NewLidDrivenCavity(1, 3, 1., 1., 1., 0.01, 0.1, 1.)
		assert.ErrorIs(t, err, ErrShapeMismatch)
		_, err = NewLidDrivenCavity(3, 3, 0., 1., 1., 0.01, 0.1, 1.)
		assert.ErrorIs(t, err, ErrShapeMismatch)
	}
}

func TestGraphValidate(t *testing.T) {
	newGraph := func() *Graph {
		g, err := NewLidDrivenCavity(3, 3, 1., 1., 1., 0.01, 0.1, 1.)
		require.NoError(t, err)
		return g
	}
	{
		assert.NoError(t, newGraph().Validate())
	}
	{ // x momentum mesh the same width as the pressure mesh
		g := newGraph()
		var err error
		g.NSXMesh, err = NewMesh(3, 3, make([]float64, 9))
		require.NoError(t, err)
		err = g.Validate()
		assert.ErrorIs(t, err, ErrShapeMismatch)
		assert.Contains(t, err.Error(), "x momentum mesh must be 2x3")
	}
	{ // y momentum mesh with too many rows
		g := newGraph()
		var err error
		g.NSYMesh, err = NewMesh(3, 3, make([]float64, 9))
		require.NoError(t, err)
		err = g.Validate()
		assert.ErrorIs(t, err, ErrShapeMismatch)
		assert.Contains(t, err.Error(), "y momentum mesh must be 3x2")
	}
	{ // Previous step field dropped
		g := newGraph()
		g.NSYMesh.PhiOld = nil
		assert.ErrorIs(t, g.Validate(), ErrShapeMismatch)
	}
	{ // Resized after construction
		g := newGraph()
		g.PressureMesh.Nx = 4
		assert.ErrorIs(t, g.Validate(), ErrShapeMismatch)
	}
	{ // Hand built mesh without tables
		g := newGraph()
		g.NSXMesh = &Mesh{Nx: 2, Ny: 3, PhiOld: make([]float64, 6)}
		assert.ErrorIs(t, g.Validate(), ErrShapeMismatch)
	}
	{
		g := newGraph()
		g.PressureMesh = nil
		assert.ErrorIs(t, g.Validate(), ErrShapeMismatch)
	}
}
