package LidDrivenCavity

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/positroncascade/lid-driven-cavity-problem/StaggeredGrid"
)

type InitType uint8

const (
	PREVIOUS InitType = iota // Previous step velocities, zero pressure
	ZERO
	RANDOM // Uniform in [-1, 1) including placeholders, for exercising the residual
)

var (
	InitNameMap = map[string]InitType{
		"previous": PREVIOUS,
		"zero":     ZERO,
		"random":   RANDOM,
	}
	InitPrintNameMap = map[InitType]string{
		PREVIOUS: "Previous Step",
		ZERO:     "Zero",
		RANDOM:   "Random",
	}
)

func (it InitType) Print() (txt string) {
	txt = InitPrintNameMap[it]
	return
}

func NewInitType(label string) (it InitType, err error) {
	var (
		ok bool
	)
	if len(label) == 0 {
		return PREVIOUS, nil
	}
	label = strings.ToLower(strings.TrimSpace(label))
	if it, ok = InitNameMap[label]; !ok {
		err = fmt.Errorf("unable to use init type named %s", label)
	}
	return
}

func NewState(g *StaggeredGrid.Graph, l *Layout, it InitType, seed int64) (X []float64, err error) {
	switch it {
	case PREVIOUS:
		X, err = InitialState(g, l)
	case ZERO:
		X = make([]float64, l.NumSlots())
	case RANDOM:
		r := rand.New(rand.NewSource(seed))
		X = make([]float64, l.NumSlots())
		for i := range X {
			X[i] = 2*r.Float64() - 1
		}
	default:
		err = fmt.Errorf("unknown init type %d", it)
	}
	return
}
