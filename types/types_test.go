package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundary(t *testing.T) {
	{ // 3x2 mesh, corners and edges
		assert.Equal(t, Left|Bottom, NewBoundary(0, 0, 3, 2))
		assert.Equal(t, Bottom, NewBoundary(0, 1, 3, 2))
		assert.Equal(t, Right|Bottom, NewBoundary(0, 2, 3, 2))
		assert.Equal(t, Left|Top, NewBoundary(1, 0, 3, 2))
		assert.Equal(t, Right|Top, NewBoundary(1, 2, 3, 2))
	}
	{ // Interior cell of a 3x3 mesh
		b := NewBoundary(1, 1, 3, 3)
		assert.Equal(t, Interior, b)
		assert.False(t, b.Has(Left) || b.Has(Right) || b.Has(Bottom) || b.Has(Top))
		assert.Equal(t, "Interior", b.String())
	}
	{ // A single column touches both side walls
		b := NewBoundary(0, 0, 1, 2)
		assert.True(t, b.Has(Left))
		assert.True(t, b.Has(Right))
		assert.Equal(t, "Left|Right|Bottom", b.String())
	}
}
