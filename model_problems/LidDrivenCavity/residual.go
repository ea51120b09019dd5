package LidDrivenCavity

import (
	"gonum.org/v1/gonum/mat"

	"github.com/positroncascade/lid-driven-cavity-problem/StaggeredGrid"
	"github.com/positroncascade/lid-driven-cavity-problem/utils"
)

/*
ResidualFunction evaluates the coupled residual of a lid driven cavity

	R[3i]   continuity of pressure cell i
	R[3i+1] x momentum of the x velocity stored at flat position i
	R[3i+2] y momentum of y momentum cell i

for a flat state vector of the same layout. Placeholder unknowns, which have no
equation, get R = X so the solver drives them to zero.

The graph is held by reference: the previous step fields may be updated
between calls, the mesh shapes may not.
*/
type ResidualFunction struct {
	ParallelDegree int  // Number of go routines per equation family, 0 is one per CPU
	Debug          bool // Track every slot write and fail on any unassigned slot
	graph          *StaggeredGrid.Graph
	layout         *Layout
	assemblers     []*assembler
}

type Option func(rf *ResidualFunction)

func WithParallelDegree(np int) Option {
	return func(rf *ResidualFunction) { rf.ParallelDegree = np }
}

func WithDebug(debug bool) Option {
	return func(rf *ResidualFunction) { rf.Debug = debug }
}

func NewResidualFunction(g *StaggeredGrid.Graph, opts ...Option) (rf *ResidualFunction, err error) {
	rf = &ResidualFunction{
		ParallelDegree: 1,
		graph:          g,
	}
	for _, opt := range opts {
		opt(rf)
	}
	if rf.layout, err = NewLayout(g); err != nil {
		return nil, err
	}
	rf.assemblers = []*assembler{
		{Continuity, rf.layout.ContinuitySlots, rf.continuity},
		{XMomentum, rf.layout.XMomentumSlots, func(st *State, i int) float64 {
			return rf.xMomentumTerms(st, i).Residual()
		}},
		{YMomentum, rf.layout.YMomentumSlots, func(st *State, i int) float64 {
			return rf.yMomentumTerms(st, i).Residual()
		}},
	}
	return
}

func (rf *ResidualFunction) Layout() *Layout { return rf.layout }

func (rf *ResidualFunction) Graph() *StaggeredGrid.Graph { return rf.graph }

func (rf *ResidualFunction) Evaluate(X []float64) (R []float64, err error) {
	var (
		st      *State
		written []bool
	)
	if err = rf.layout.sameShape(rf.graph); err != nil {
		return
	}
	if st, err = UnpackState(X, rf.layout); err != nil {
		return
	}
	R = make([]float64, len(X))
	if rf.Debug {
		written = make([]bool, len(X))
	}
	rf.assemble(st, R, written)
	rf.finalize(X, R, written)
	if rf.Debug {
		if err = checkComplete(written); err != nil {
			return nil, err
		}
	}
	return
}

func (rf *ResidualFunction) EvaluateVec(X mat.Vector) (R *mat.VecDense, err error) {
	var (
		r []float64
	)
	if r, err = rf.Evaluate(utils.VecData(X)); err != nil {
		return
	}
	R = mat.NewVecDense(len(r), r)
	return
}

// Residual is a one shot evaluation, building the layout for g on every call
func Residual(X []float64, g *StaggeredGrid.Graph, opts ...Option) (R []float64, err error) {
	var (
		rf *ResidualFunction
	)
	if rf, err = NewResidualFunction(g, opts...); err != nil {
		return
	}
	return rf.Evaluate(X)
}
