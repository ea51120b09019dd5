package LidDrivenCavity

import (
	"github.com/positroncascade/lid-driven-cavity-problem/types"
)

/*
yMomentumTerms evaluates the y momentum balance of y momentum cell i, centered
on a horizontal face between two pressure cells:

	        VN             Pn
	   UNW  |  UNE
	VW --- VP --- VE       --
	   USW  |  USE
	        VS             Ps

All wall neighbors are zero. The corner x velocities are zero on the side
walls, and take the lid velocity BC on the top row.
*/
func (rf *ResidualFunction) yMomentumTerms(st *State, i int) (mt MomentumTerms) {
	var (
		g                   = rf.graph
		xm, ym              = g.NSXMesh, g.NSYMesh
		dx, dy, rho, mi, dt = g.Dx, g.Dy, g.Rho, g.Mi, g.Dt
		row                 = ym.Row(i)
		bnd                 = ym.Boundary(i)
		U, V, P             = st.U, st.V, st.P
		VP                  = V[i]
		VPold               = ym.PhiOld[i]
		VW, VE, VN, VS      float64
		USE, USW, UNE, UNW  float64
		iUSE                = i - row
		iUSW                = iUSE - 1
		iUNE                = iUSE + xm.Nx
		iUNW                = iUSW + xm.Nx
		Pn, Ps              = P[i+ym.Nx], P[i]
	)
	if !bnd.Has(types.Left) {
		VW = V[i-1]
	}
	if !bnd.Has(types.Right) {
		VE = V[i+1]
	}
	if !bnd.Has(types.Top) {
		VN = V[i+ym.Nx]
	}
	if !bnd.Has(types.Bottom) {
		VS = V[i-ym.Nx]
	}
	switch {
	case bnd.Has(types.Right):
	case bnd.Has(types.Top):
		USE, UNE = U[iUSE], g.BC
	default:
		USE, UNE = U[iUSE], U[iUNE]
	}
	switch {
	case bnd.Has(types.Left):
	case bnd.Has(types.Top):
		USW, UNW = U[iUSW], g.BC
	default:
		USW, UNW = U[iUSW], U[iUNW]
	}
	var (
		// Face velocities
		Ue  = (UNE + USE) / 2.
		Uw  = (UNW + USW) / 2.
		Vn  = (VP + VN) / 2.
		Vs  = (VS + VP) / 2.
		// Face gradients
		dVe = (VE - VP) / dx
		dVw = (VP - VW) / dx
		dVn = (VN - VP) / dy
		dVs = (VP - VS) / dy
	)
	mt.Transient = (rho*VP - rho*VPold) * (dx * dy / dt)
	mt.Advective = upwindFlux(rho, Ue, VE, VP)*dy -
		upwindFlux(rho, Uw, VP, VW)*dy +
		upwindFlux(rho, Vn, VN, VP)*dx -
		upwindFlux(rho, Vs, VP, VS)*dx
	mt.Diffusive = mi*dVe*dy - mi*dVw*dy + mi*dVn*dx - mi*dVs*dx
	// Pressure force uses dy as the face length in both momentum equations
	mt.Source = -(Pn - Ps) * dy
	return
}
