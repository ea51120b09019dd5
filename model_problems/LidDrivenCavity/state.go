package LidDrivenCavity

import (
	"fmt"

	"github.com/positroncascade/lid-driven-cavity-problem/StaggeredGrid"
)

// State holds the unknowns of one flat state vector, each field indexed by
// cells of its own mesh. ExtendedU keeps the raw stride of X including the
// placeholder x velocities.
type State struct {
	P         []float64 // Pressure mesh order, length N
	ExtendedU []float64 // Flat order, length N
	U         []float64 // X momentum mesh order
	V         []float64 // Y momentum mesh order
}

func UnpackState(X []float64, l *Layout) (st *State, err error) {
	if len(X) != l.NumSlots() {
		err = fmt.Errorf("%w: have %d values, need 3 x %d pressure cells = %d",
			ErrStateLength, len(X), l.N, l.NumSlots())
		return
	}
	st = &State{
		P:         make([]float64, l.N),
		ExtendedU: make([]float64, l.N),
		V:         make([]float64, l.NumV),
	}
	for i := 0; i < l.N; i++ {
		st.P[i] = X[3*i]
		st.ExtendedU[i] = X[3*i+1]
	}
	for i := 0; i < l.NumV; i++ {
		st.V[i] = X[3*i+2]
	}
	st.U = l.UFlat.SubsetFloat(st.ExtendedU)
	return
}

// PackState is the inverse of UnpackState, placeholder unknowns are set to zero
func PackState(l *Layout, P, U, V []float64) (X []float64, err error) {
	switch {
	case len(P) != l.N:
		err = fmt.Errorf("%w: pressure has %d values, need %d", ErrStateLength, len(P), l.N)
	case len(U) != l.NumU:
		err = fmt.Errorf("%w: x velocity has %d values, need %d", ErrStateLength, len(U), l.NumU)
	case len(V) != l.NumV:
		err = fmt.Errorf("%w: y velocity has %d values, need %d", ErrStateLength, len(V), l.NumV)
	}
	if err != nil {
		return
	}
	X = make([]float64, l.NumSlots())
	for i, p := range P {
		X[3*i] = p
	}
	for i, u := range U {
		X[3*l.UFlat[i]+1] = u
	}
	for i, v := range V {
		X[3*i+2] = v
	}
	return
}

// InitialState packs the previous step velocities of g with zero pressure,
// the usual starting guess for the nonlinear solve of a new time step
func InitialState(g *StaggeredGrid.Graph, l *Layout) (X []float64, err error) {
	return PackState(l, make([]float64, l.N), g.NSXMesh.PhiOld, g.NSYMesh.PhiOld)
}

// StoreAsPrevious copies the velocities of st into the previous step fields of g
func (st *State) StoreAsPrevious(g *StaggeredGrid.Graph) (err error) {
	if len(g.NSXMesh.PhiOld) != len(st.U) || len(g.NSYMesh.PhiOld) != len(st.V) {
		err = fmt.Errorf("%w: state velocities %d, %d do not fit previous step fields %d, %d",
			StaggeredGrid.ErrShapeMismatch, len(st.U), len(st.V), len(g.NSXMesh.PhiOld), len(g.NSYMesh.PhiOld))
		return
	}
	copy(g.NSXMesh.PhiOld, st.U)
	copy(g.NSYMesh.PhiOld, st.V)
	return
}
