package LidDrivenCavity

import (
	"github.com/positroncascade/lid-driven-cavity-problem/types"
)

/*
continuity is the net volume flux out of pressure cell i through its four
faces. Faces on the cavity walls carry no flow.

	R = (Ue - Uw) * dy + (Vn - Vs) * dx
*/
func (rf *ResidualFunction) continuity(st *State, i int) (r float64) {
	var (
		pm             = rf.graph.PressureMesh
		dx, dy         = rf.graph.Dx, rf.graph.Dy
		row            = pm.Row(i)
		bnd            = pm.Boundary(i)
		Ue, Uw, Vn, Vs float64
	)
	// The x momentum cell east of pressure cell i is i-row, west is i-row-1
	if !bnd.Has(types.Left) {
		Uw = st.U[i-row-1]
	}
	if !bnd.Has(types.Right) {
		Ue = st.U[i-row]
	}
	if !bnd.Has(types.Top) {
		Vn = st.V[i]
	}
	if !bnd.Has(types.Bottom) {
		Vs = st.V[i-pm.Nx]
	}
	r = (Ue*dy - Uw*dy) + (Vn*dx - Vs*dx)
	return
}
