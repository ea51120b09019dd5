package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParametersCavity(t *testing.T) {
	{
		fileInput := []byte(`
Title: Re 100
Nx: 8
Ny: 6
Height: 0.75
Mi: 0.01 # Re = rho * U * L / mi
InitType: Random
Seed: 42
ParallelDegree: 2
Debug: true
`)
		ip := NewInputParametersCavity()
		require.NoError(t, ip.Parse(fileInput))
		assert.Equal(t, "Re 100", ip.Title)
		assert.Equal(t, 8, ip.Nx)
		assert.Equal(t, 6, ip.Ny)
		assert.Equal(t, 0.75, ip.Height)
		assert.Equal(t, int64(42), ip.Seed)
		assert.Equal(t, 2, ip.ParallelDegree)
		assert.True(t, ip.Debug)
		// Unset keys keep their defaults
		assert.Equal(t, 1., ip.Length)
		assert.Equal(t, 1., ip.LidVelocity)
		ip.Print()
		g, err := ip.NewGraph()
		require.NoError(t, err)
		assert.Equal(t, 7, g.NSXMesh.Nx)
		assert.Equal(t, 5, g.NSYMesh.Ny)
		assert.InDelta(t, 0.125, g.Dx, 1.e-15)
		assert.InDelta(t, 0.125, g.Dy, 1.e-15)
	}
	{
		ip := NewInputParametersCavity()
		assert.Error(t, ip.Parse([]byte("Nx: [1, 2")))
	}
	{
		ip := NewInputParametersCavity()
		ip.Nx = 1
		_, err := ip.NewGraph()
		assert.Error(t, err)
	}
}
