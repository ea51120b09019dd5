package LidDrivenCavity

import (
	"github.com/positroncascade/lid-driven-cavity-problem/types"
)

/*
xMomentumTerms evaluates the x momentum balance of x momentum cell i. The
control volume is centered on a vertical face between two pressure cells:

	        UN
	   VNW  |  VNE
	UW --- UP --- UE      Pw | Pe
	   VSW  |  VSE
	        US

Stationary walls give zero neighbor velocity, the lid gives UN = BC on the top
row. Wall normal velocities VNW, VNE on the top row and VSW, VSE on the bottom
row are zero.
*/
func (rf *ResidualFunction) xMomentumTerms(st *State, i int) (mt MomentumTerms) {
	var (
		g                   = rf.graph
		xm, ym              = g.NSXMesh, g.NSYMesh
		dx, dy, rho, mi, dt = g.Dx, g.Dy, g.Rho, g.Mi, g.Dt
		row                 = xm.Row(i)
		bnd                 = xm.Boundary(i)
		U, V, P             = st.U, st.V, st.P
		UP                  = U[i]
		UPold               = xm.PhiOld[i]
		UW, UE, US          float64
		UN                  = g.BC
		VNE, VNW, VSE, VSW  float64
		iVNW                = i + row
		iVNE                = iVNW + 1
		Pw, Pe              = P[i+row], P[i+row+1]
	)
	if !bnd.Has(types.Left) {
		UW = U[i-1]
	}
	if !bnd.Has(types.Right) {
		UE = U[i+1]
	}
	if !bnd.Has(types.Top) {
		UN = U[i+xm.Nx]
		VNW, VNE = V[iVNW], V[iVNE]
	}
	if !bnd.Has(types.Bottom) {
		US = U[i-xm.Nx]
		VSW, VSE = V[iVNW-ym.Nx], V[iVNE-ym.Nx]
	}
	var (
		// Face velocities
		Ue  = (UE + UP) / 2.
		Uw  = (UP + UW) / 2.
		Vn  = (VNE + VNW) / 2.
		Vs  = (VSE + VSW) / 2.
		// Face gradients
		dUe = (UE - UP) / dx
		dUw = (UP - UW) / dx
		dUn = (UN - UP) / dy
		dUs = (UP - US) / dy
	)
	mt.Transient = (rho*UP - rho*UPold) * (dx * dy / dt)
	mt.Advective = upwindFlux(rho, Ue, UE, UP)*dy -
		upwindFlux(rho, Uw, UP, UW)*dy +
		upwindFlux(rho, Vn, UN, UP)*dx -
		upwindFlux(rho, Vs, UP, US)*dx
	mt.Diffusive = mi*dUe*dy - mi*dUw*dy + mi*dUn*dx - mi*dUs*dx
	mt.Source = -(Pe - Pw) * dy
	return
}
