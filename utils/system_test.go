package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNanIndices(t *testing.T) {
	assert.Nil(t, NanIndices([]float64{0, 1, 2}))
	assert.Equal(t, Index{1, 3}, NanIndices([]float64{0, math.NaN(), 2, math.Inf(-1)}))
	assert.Contains(t, GetMemUsage(), "MiB")
}
